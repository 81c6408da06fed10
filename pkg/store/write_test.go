package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := WriteCatalog(path, "Lib\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "Lib\n" {
		t.Fatalf("unexpected contents %q", got)
	}
	if _, err := os.Stat(path + ".new"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestWriteCatalogMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "list.txt")
	if err := WriteCatalog(path, "Lib\n"); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}
