package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tcutils/pkg/catalog"
	"tableflip.dev/tcutils/pkg/glyph"
)

// PrettyPrint writes catalogs to the terminal. Colors switch off on their
// own when the output is not a terminal, so piped output is the plain
// catalog text.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Document prints every line of doc: the label as a title, key lines in
// bold, entries plain and the footer faint.
func (pp *PrettyPrint) Document(doc *catalog.Document) {
	if len(doc.Lines) == 0 {
		return
	}

	grouped := false
	for _, line := range doc.Lines[1:] {
		if strings.HasPrefix(line, glyph.Indent) && !catalog.IsFooter(line) {
			grouped = true
			break
		}
	}

	key := color.New(color.Bold)
	faint := color.New(color.Faint)
	out := pp.out()

	pp.Title(doc.Lines[0])
	last := len(doc.Lines) - 1
	for i, line := range doc.Lines[1:] {
		switch {
		case i+1 == last && doc.Footer != nil:
			_, _ = faint.Fprintln(out, line)
		case line == "" || strings.HasPrefix(line, glyph.Indent) || !grouped:
			_, _ = fmt.Fprintln(out, line)
		default:
			_, _ = key.Fprintln(out, line)
		}
	}
}
