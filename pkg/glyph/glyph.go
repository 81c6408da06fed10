// Package glyph holds the marker characters that give catalog and manifest
// lines their structure.
package glyph

import "fmt"

// Glyph describes one recognized marker.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	// Separator splits a manifest file name into category key and subtitle.
	Separator = '｜'

	// Sentinel is the category key for entries with no natural grouping.
	Sentinel = "<>"

	// Indent prefixes entry lines that sit under a category key line.
	Indent = "  "

	// ChapterMarker may lead the chapter number of an entry.
	ChapterMarker = "第"

	// ChapterTerminators close the chapter number of an entry.
	ChapterTerminators = "話巻章回部集号"

	// FooterPrefix starts the metadata field of the catalog footer.
	FooterPrefix = "meta:"

	// CommentOpen and CommentClose bracket the footer in its comment style.
	CommentOpen  = "/*"
	CommentClose = "*/"
)

// DefaultGlyphs lists the markers in the order the key legend shows them.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "separator",
		Symbol:  string(Separator),
		Meaning: "splits a file name into category and subtitle",
	}, Glyph{
		Key:     "sentinel",
		Symbol:  Sentinel,
		Meaning: "category for entries without a key",
	}, Glyph{
		Key:     "indent",
		Symbol:  fmt.Sprintf("%q", Indent),
		Meaning: "entry belongs to the category above",
	}, Glyph{
		Key:     "chapter",
		Symbol:  ChapterMarker + "N[" + ChapterTerminators + "]",
		Meaning: "chapter number used by the default sort",
	}, Glyph{
		Key:     "date",
		Symbol:  "(YYYY.MM.DD)",
		Meaning: "release date used by the date sort",
	}, Glyph{
		Key:     "footer",
		Symbol:  CommentOpen + "  " + FooterPrefix + "v,count,time  " + CommentClose,
		Meaning: "format version, entry count and write time",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}
