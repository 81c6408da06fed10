package options

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
)

func TestManifestPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := map[string]struct {
		flag string
		args []string
		want string
		err  error
	}{
		"none":            {},
		"positional":      {args: []string{"/tc/CMD1.tmp"}, want: "/tc/CMD1.tmp"},
		"flag":            {flag: "/tc/CMD2.tmp", want: "/tc/CMD2.tmp"},
		"flag wins":       {flag: "/tc/CMD2.tmp", args: []string{"/tc/CMD1.tmp"}, want: "/tc/CMD2.tmp"},
		"dot":             {args: []string{"."}, want: wd},
		"dot slash":       {args: []string{"./"}, want: wd},
		"home":            {args: []string{"~/CMD1.tmp"}, want: filepath.Join(home, "CMD1.tmp")},
		"too many":        {args: []string{"a.tmp", "b.tmp"}, err: ErrAmbiguousPath},
		"too many + flag": {flag: "c.tmp", args: []string{"a.tmp", "b.tmp"}, err: ErrAmbiguousPath},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := ListOptions{Path: tc.flag}
			got, err := o.ManifestPath(tc.args)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCatalogDirDefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	o := ListOptions{}
	got, err := o.CatalogDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != wd {
		t.Fatalf("expected %q, got %q", wd, got)
	}
}
