package catalog

import (
	"errors"

	"golang.org/x/text/encoding"
)

type memorySource struct {
	files map[string][]string
	reads map[string]encoding.Encoding
	err   error
}

func newMemorySource() *memorySource {
	return &memorySource{
		files: make(map[string][]string),
		reads: make(map[string]encoding.Encoding),
	}
}

func (m *memorySource) Read(path string, enc encoding.Encoding) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.reads[path] = enc
	return append([]string(nil), m.files[path]...), nil
}

type memorySnapshots struct {
	backups []string
	fail    bool
}

func (m *memorySnapshots) Backup(path string) (string, error) {
	if m.fail {
		return "", errors.New("disk full")
	}
	m.backups = append(m.backups, path)
	return "snap-1", nil
}
