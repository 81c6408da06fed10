package store

import (
	"fmt"
	"os"
)

// WriteCatalog replaces the file at path with text. The text lands in a
// sibling temp file first and is renamed over path, so readers never see a
// partial catalog.
func WriteCatalog(path, text string) error {
	tmp := path + ".new"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: replace %s: %w", path, err)
	}
	return nil
}
