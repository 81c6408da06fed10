// Package clipboard mirrors rendered catalogs to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Sink receives text destined for the clipboard.
type Sink interface {
	SetText(text string) error
}

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// System writes to the operating system clipboard.
type System struct{}

// SetText replaces the clipboard contents with text.
func (System) SetText(text string) error {
	if err := writeAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
