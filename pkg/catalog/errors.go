package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the manifest path does not look like a manifest.
	ErrNotFound = errors.New("entity not found")

	// ErrUnexpectedEOF indicates the manifest decoded to no lines.
	ErrUnexpectedEOF = errors.New("unexpected end of file")

	// ErrNoChange signals that the rendered entry count equals the count
	// recorded by the previous write. It is a control signal, not a failure.
	ErrNoChange = errors.New("no changes to be made")

	// ErrIO matches every IOError.
	ErrIO = errors.New("i/o failure")
)

// IOError records a failed read, write or backup of path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
