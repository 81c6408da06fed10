package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseManifest(t *testing.T) {
	src := newMemorySource()
	src.files[`C:\tc\CMD1234.tmp`] = []string{
		`C:\Lib\MagA｜Sub1.pdf`,
		`C:\Lib\MagA｜Sub2.pdf`,
		``,
		`C:\Lib\list.txt`,
		`C:\Lib\plain file.epub`,
		`C:\Lib\Series｜Lib Vol 3\`,
		`C:\Lib\Mag｜x｜ Last.tar.gz`,
	}

	c, err := ParseManifest(`C:\tc\CMD1234.tmp`, src, ManifestOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Label != "Lib" {
		t.Fatalf("expected label Lib, got %q", c.Label)
	}
	if src.reads[`C:\tc\CMD1234.tmp`] != ManifestEncoding {
		t.Fatalf("expected manifest to be read as UTF-16LE")
	}

	want := map[string][]string{
		"MagA":   {"Sub1", "Sub2"},
		Sentinel: {"plain file"},
		"Series": {"Vol 3"},
		"Mag":    {"Last.tar"},
	}
	if diff := cmp.Diff(want, c.Categories); diff != "" {
		t.Fatalf("unexpected categories (-want +got):\n%s", diff)
	}
	if c.PreviousCount != 0 {
		t.Fatalf("expected previous count 0, got %d", c.PreviousCount)
	}
}

func TestParseManifestKeepsDuplicates(t *testing.T) {
	src := newMemorySource()
	src.files["/tmp/sel.tmp"] = []string{"/home/me/Books/A｜one.pdf", "/home/me/Books/A｜one.epub"}

	c, err := ParseManifest("/tmp/sel.tmp", src, ManifestOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Label != "Books" {
		t.Fatalf("expected label Books, got %q", c.Label)
	}
	if diff := cmp.Diff([]string{"one", "one"}, c.Categories["A"]); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestParseManifestNotAManifest(t *testing.T) {
	_, err := ParseManifest(`C:\Lib\list.txt`, newMemorySource(), ManifestOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseManifestCustomMarker(t *testing.T) {
	src := newMemorySource()
	src.files["/tmp/sel.lst"] = []string{"/a/b/c.txt"}
	if _, err := ParseManifest("/tmp/sel.lst", src, ManifestOptions{Marker: ".lst"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseManifestEmpty(t *testing.T) {
	src := newMemorySource()
	src.files["/tmp/a.tmp"] = []string{"", "  "}
	_, err := ParseManifest("/tmp/a.tmp", src, ManifestOptions{})
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}

	_, err = ParseManifest("/tmp/missing.tmp", src, ManifestOptions{})
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF for missing manifest, got %v", err)
	}
}

func TestParseManifestReadError(t *testing.T) {
	src := newMemorySource()
	src.err = errors.New("permission denied")
	_, err := ParseManifest("/tmp/a.tmp", src, ManifestOptions{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Lib\a.pdf`, "a"},
		{`C:\Lib\dir.v2\`, "dir.v2"},
		{"/x/y/archive.tar.gz", "archive.tar"},
		{"/x/.hidden", ".hidden"},
		{"/x/noext", "noext"},
	}
	for _, tt := range tests {
		if got := baseName(tt.in); got != tt.want {
			t.Errorf("baseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
