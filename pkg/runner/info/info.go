// Package info reports where tcutils reads and writes, and what the catalog
// in a directory currently holds.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tcutils/pkg/catalog"
	"tableflip.dev/tcutils/pkg/glyph"
	"tableflip.dev/tcutils/pkg/logging"
	"tableflip.dev/tcutils/pkg/printers"
	"tableflip.dev/tcutils/pkg/store"
	"tableflip.dev/tcutils/pkg/timeutil"
)

// SnapshotLister lists and reads the snapshots taken of a catalog.
type SnapshotLister interface {
	BasePath() string
	List(ctx context.Context, path string) []string
	Read(key string) ([]byte, error)
}

type Info struct {
	Config    store.Config
	Dir       string
	Lines     catalog.LineSource
	Snapshots SnapshotLister
	Out       io.Writer
	Now       func() time.Time
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Lines == nil {
		n.Lines = store.FileSource{}
	}
	if n.Now == nil {
		n.Now = time.Now
	}
	bold := color.New(color.Bold)
	pp := printers.PrettyPrint{Out: n.Out}

	if override := os.Getenv("TCUTILS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "TCUTILS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, "TCUTILS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	path := filepath.Join(n.Dir, n.Config.CatalogFile())
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Catalog"), path)
	tbl.AddRow(bold.Sprint("Marker"), n.Config.Marker())
	tbl.AddRow(bold.Sprint("Sort"), n.Config.Sort())
	tbl.AddRow(bold.Sprint("Footer"), n.Config.Footer())
	tbl.AddRow(bold.Sprint("Clipboard"), clipboardState(n.Config.IgnoreClipboard()))
	if n.Snapshots != nil {
		tbl.AddRow(bold.Sprint("Snapshots"), fmt.Sprintf("%d in %s", len(n.Snapshots.List(ctx, path)), n.Snapshots.BasePath()))
	}
	_, _ = fmt.Fprintln(n.Out, tbl)
	pp.NewLine()

	lines, err := n.Lines.Read(path, catalog.CatalogEncoding)
	if err != nil {
		return &catalog.IOError{Op: "read", Path: path, Err: err}
	}
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(n.Out, "  no catalog")
		return nil
	}

	c := catalog.ParseCatalog(lines, catalog.ParseOptions{
		CatalogFile: n.Config.CatalogFile(),
		Log:         &logging.Nop,
	})

	pp.TitleWithCount(c.Label, c.Len())
	cats := uitable.New()
	cats.Separator = "  "
	for _, k := range c.Keys() {
		cats.AddRow(glyph.Indent+k, len(c.Categories[k]))
	}
	cats.RightAlign(1)
	_, _ = fmt.Fprintln(n.Out, cats)
	pp.NewLine()

	faint := color.New(color.Faint)
	if c.Footer == nil {
		_, _ = faint.Fprintln(n.Out, "no footer, next write counts as a change")
	} else {
		_, _ = faint.Fprintf(n.Out, "footer %s, %d entries, %s\n", c.Footer.Version, c.Footer.Count, n.written(c.Footer))
	}

	if n.Snapshots != nil {
		if key, f := n.latestSnapshot(ctx, path); key != "" {
			_, _ = faint.Fprintf(n.Out, "latest snapshot %s: %d entries, %s\n", key, f.Count, n.written(f))
		}
	}
	return nil
}

func (n *Info) written(f *catalog.Footer) string {
	if f.Timestamp.IsZero() {
		return "write time unknown"
	}
	return fmt.Sprintf("written %s (%s ago)",
		timeutil.FormatStamp(f.Timestamp),
		timeutil.FormatAge(n.Now().Sub(f.Timestamp)))
}

// latestSnapshot returns the snapshot of path whose footer is the most
// recent. Snapshots without a readable footer are skipped.
func (n *Info) latestSnapshot(ctx context.Context, path string) (string, *catalog.Footer) {
	var (
		bestKey string
		best    *catalog.Footer
	)
	for _, key := range n.Snapshots.List(ctx, path) {
		data, err := n.Snapshots.Read(key)
		if err != nil {
			continue
		}
		f := snapshotFooter(data)
		if f == nil {
			continue
		}
		if best == nil || f.Timestamp.After(best.Timestamp) {
			bestKey, best = key, f
		}
	}
	return bestKey, best
}

func snapshotFooter(data []byte) *catalog.Footer {
	text, err := catalog.CatalogEncoding.NewDecoder().Bytes(data)
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(text), "\r\n \t"), "\n")
	f, ok, err := catalog.ParseFooter(strings.TrimSuffix(lines[len(lines)-1], "\r"))
	if !ok || err != nil {
		return nil
	}
	return &f
}

func clipboardState(ignored bool) string {
	if ignored {
		return "ignored"
	}
	return "copied"
}
