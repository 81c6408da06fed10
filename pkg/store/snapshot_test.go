package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotsBackup(t *testing.T) {
	catalogDir := t.TempDir()
	path := filepath.Join(catalogDir, "list.txt")
	if err := os.WriteFile(path, []byte("Lib\n\nMagA\n  Sub1\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewSnapshots(t.TempDir())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}

	first, err := s.Backup(path)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if !strings.HasSuffix(first, "-id1-list.txt") {
		t.Fatalf("unexpected key %q", first)
	}
	if _, err := s.Backup(path); err != nil {
		t.Fatalf("second backup: %v", err)
	}

	data, err := s.Read(first)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Lib\n\nMagA\n  Sub1\n" {
		t.Fatalf("unexpected snapshot contents %q", data)
	}

	keys := s.List(context.Background(), path)
	if len(keys) != 2 {
		t.Fatalf("expected 2 snapshots, got %v", keys)
	}
	other := filepath.Join(t.TempDir(), "list.txt")
	if got := s.List(context.Background(), other); len(got) != 0 {
		t.Fatalf("expected no snapshots for another directory, got %v", got)
	}
}

func TestSnapshotsBackupMissing(t *testing.T) {
	s := NewSnapshots(t.TempDir())
	key, err := s.Backup(filepath.Join(t.TempDir(), "list.txt"))
	if err != nil || key != "" {
		t.Fatalf("expected no snapshot and no error, got %q, %v", key, err)
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	key := toKey("/lib/list.txt", "3f2a-b1c9")
	pk := keyToPathTransform(key)
	if len(pk.Path) != 1 || pk.FileName != "3f2a-b1c9-list.txt" {
		t.Fatalf("unexpected path key %+v", pk)
	}
	if got := pathToKeyTransform(pk); got != key {
		t.Fatalf("round trip %q, want %q", got, key)
	}
}
