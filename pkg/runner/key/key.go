// Package key prints the legend of markers tcutils reads and writes.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tcutils/pkg/glyph"
)

// Key prints a glyph legend describing catalog and manifest markers.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Marker"), bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(k.Out, "")
	_, _ = fmt.Fprintln(k.Out, tbl)
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}
