// Package sorter orders the entries of a catalog category.
//
// A Strategy is one of a closed set of four variants (none, name, date,
// chapter). Each variant carries its own comparator; the regular expressions
// the keyed variants need live in a Patterns table that is built once and
// handed to Parse.
package sorter

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/tcutils/pkg/glyph"
)

// Patterns is the immutable table of expressions used to derive sort keys.
type Patterns struct {
	// Date matches a parenthesized (YYYY?MM?DD) date with optional
	// single-character separators.
	Date *regexp.Regexp
	// Chapter matches a digit run with an optional leading chapter marker and
	// a trailing terminator glyph.
	Chapter *regexp.Regexp
}

// NewPatterns compiles the pattern table.
func NewPatterns() *Patterns {
	return &Patterns{
		Date:    regexp.MustCompile(`\((\d{4})[^\d)]?(\d{1,2})[^\d)]?(\d{1,2})\)`),
		Chapter: regexp.MustCompile(`(?:` + glyph.ChapterMarker + `)?(\d+)[` + glyph.ChapterTerminators + `]`),
	}
}

// Strategy orders two entries. The unexported method keeps the set of
// variants closed to this package.
type Strategy interface {
	Name() string
	compare(a, b string) int
}

const (
	NameNone    = "none"
	NameName    = "name"
	NameDate    = "date"
	NameChapter = "chapter"
)

// Names lists the accepted strategy names, default first.
func Names() []string {
	return []string{NameNone, NameName, NameDate, NameChapter}
}

// Parse returns the strategy called name. An empty name selects none.
func Parse(name string, p *Patterns) (Strategy, error) {
	if p == nil {
		return nil, fmt.Errorf("sorter: pattern table required")
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameNone:
		return None{chapter: p.Chapter}, nil
	case NameName:
		return Lexical{collator: collate.New(language.Und)}, nil
	case NameDate:
		return Date{date: p.Date}, nil
	case NameChapter:
		return Chapter{chapter: p.Chapter}, nil
	default:
		return nil, fmt.Errorf("sorter: unknown strategy %q, want one of %s", name, strings.Join(Names(), ", "))
	}
}

// Sort orders entries in place. Equal input and strategy always give equal
// output.
func Sort(entries []string, s Strategy) {
	slices.SortStableFunc(entries, s.compare)
}

// None is the default heuristic. It orders by chapter number and never
// consults the date pattern.
type None struct {
	chapter *regexp.Regexp
}

func (None) Name() string { return NameNone }

func (s None) compare(a, b string) int {
	return compareKeyed(chapterKey(s.chapter, a), chapterKey(s.chapter, b), a, b)
}

// Lexical orders entries by locale-aware text comparison.
type Lexical struct {
	collator *collate.Collator
}

func (Lexical) Name() string { return NameName }

func (s Lexical) compare(a, b string) int {
	if c := s.collator.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Date orders entries by the first parenthesized date they contain.
type Date struct {
	date *regexp.Regexp
}

func (Date) Name() string { return NameDate }

func (s Date) compare(a, b string) int {
	return compareKeyed(dateKey(s.date, a), dateKey(s.date, b), a, b)
}

// Chapter orders entries by their chapter number.
type Chapter struct {
	chapter *regexp.Regexp
}

func (Chapter) Name() string { return NameChapter }

func (s Chapter) compare(a, b string) int {
	return compareKeyed(chapterKey(s.chapter, a), chapterKey(s.chapter, b), a, b)
}

// compareKeyed orders by numeric key, then case-insensitive text, then exact
// text.
func compareKeyed(ka, kb uint64, a, b string) int {
	if c := cmp.Compare(ka, kb); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// dateKey returns YYYYMMDD for the first date in s, or 0.
func dateKey(re *regexp.Regexp, s string) uint64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	year, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0
	}
	month, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return 0
	}
	day, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return 0
	}
	return year*10000 + month*100 + day
}

// chapterKey returns the first chapter number in s, or 0.
func chapterKey(re *regexp.Regexp, s string) uint64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
