package options

import (
	"errors"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// ErrAmbiguousPath is returned when more than one manifest path is given.
var ErrAmbiguousPath = errors.New("more than one manifest path given")

// ListOptions holds the list flags read directly. --sort, --footer and
// --ignore-clipboard are bound to viper and read through store.Config.
type ListOptions struct {
	List   bool
	Path   string
	Dir    string
	DryRun bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.List, "list", false,
		"Merge the manifest into the catalog.")
	cmd.Flags().StringVarP(&o.Path, "path", "p", "",
		"Path of the manifest file. Wins over the positional argument.")
	cmd.Flags().StringVarP(&o.Dir, "dir", "d", "",
		"Directory holding the catalog file. Defaults to the working directory.")
	cmd.Flags().BoolP("ignore-clipboard", "c", false,
		"Do not copy the catalog to the clipboard.")
	cmd.Flags().String("sort", "none",
		"Entry order, one of none, name, date or chapter.")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false,
		"Print and copy the catalog without writing it or taking a snapshot.")
	cmd.Flags().String("footer", "comment",
		"Footer style, one of comment or plain.")
}

// ManifestPath picks the manifest from --path or the positional arguments.
// It returns "" when no path was given.
func (o *ListOptions) ManifestPath(args []string) (string, error) {
	if len(args) > 1 {
		return "", ErrAmbiguousPath
	}
	p := o.Path
	if p == "" && len(args) == 1 {
		p = args[0]
	}
	if p == "" {
		return "", nil
	}
	return ExpandPath(p)
}

// CatalogDir returns the expanded --dir, or the working directory.
func (o *ListOptions) CatalogDir() (string, error) {
	if o.Dir == "" {
		return os.Getwd()
	}
	return ExpandPath(o.Dir)
}

// ExpandPath resolves `.`, `./` and a leading `~`.
func ExpandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "." || p == "./" {
		return os.Getwd()
	}
	return homedir.Expand(p)
}
