package catalog

import (
	"strings"
	"time"
	"unicode"

	"tableflip.dev/tcutils/pkg/glyph"
)

// RenderOptions tunes Render. Zero values select the current version, the
// comment footer style and the wall clock.
type RenderOptions struct {
	Version Version
	Style   FooterStyle
	Now     func() time.Time
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Version == "" {
		o.Version = CurrentVersion
	}
	if o.Style == "" {
		o.Style = FooterComment
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Document is a rendered catalog.
type Document struct {
	Lines []string
	// Count is the number of entry lines emitted.
	Count int
	// Footer is nil when Render reported ErrNoChange.
	Footer *Footer
}

// Text returns the catalog file contents.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n") + "\n"
}

// ClipboardText returns the document without its footer block.
func (d *Document) ClipboardText() string {
	lines := d.Lines
	if d.Footer != nil && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

// Render flattens c into catalog lines. Categories appear in ascending key
// order, each after a blank line and its key line; when the Sentinel is the
// only category that pair is left out. Entries are indented unless their key
// is empty. An entry already emitted under an earlier category is skipped.
//
// When the emitted entry count equals c.PreviousCount, Render returns the
// document without a footer together with ErrNoChange and the caller must
// not persist it. Otherwise a footer recording the count is appended.
func Render(c *Catalog, opts RenderOptions) (*Document, error) {
	opts = opts.withDefaults()

	keys := c.Keys()
	bare := len(keys) == 1 && keys[0] == Sentinel

	lines := []string{c.Label}
	seen := make(map[string]struct{}, c.Len())
	count := 0
	for _, key := range keys {
		entries := make([]string, 0, len(c.Categories[key]))
		for _, e := range c.Categories[key] {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			entries = append(entries, e)
		}
		// Emptied by the global dedup. The bare key line would parse back
		// as a stray entry and change the count.
		if len(entries) == 0 {
			continue
		}

		if !bare {
			lines = append(lines, "", key)
		}
		indent := ""
		if key != "" {
			indent = glyph.Indent
		}
		for _, e := range entries {
			lines = append(lines, indent+e)
		}
		count += len(entries)
	}

	doc := &Document{Lines: lines, Count: count}
	if count == c.PreviousCount {
		return doc, ErrNoChange
	}

	f := Footer{Version: opts.Version, Count: count, Timestamp: opts.Now()}
	doc.Lines = append(doc.Lines, "", "", f.String(opts.Style))
	doc.Footer = &f
	return doc, nil
}
