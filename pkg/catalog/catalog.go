// Package catalog reconciles a file-manager selection manifest with a
// human-editable catalog file.
//
// Both inputs parse into a Catalog: a label plus entries grouped by category
// key. Merge combines the two without dropping anything, SortEntries orders
// each category, and Render flattens the result back to catalog lines with a
// versioned footer, reporting ErrNoChange when the entry count matches the
// one recorded by the previous write.
package catalog

import (
	"slices"
	"sort"

	"golang.org/x/text/encoding"

	"tableflip.dev/tcutils/pkg/glyph"
	"tableflip.dev/tcutils/pkg/sorter"
)

// Sentinel is the category key for entries with no natural grouping.
const Sentinel = glyph.Sentinel

const (
	// DefaultCatalogFile is the catalog file name inside the catalog directory.
	DefaultCatalogFile = "list.txt"
	// DefaultMarker identifies a manifest path.
	DefaultMarker = ".tmp"
)

// LineSource reads a file as decoded text lines. A missing file yields no
// lines and no error.
type LineSource interface {
	Read(path string, enc encoding.Encoding) ([]string, error)
}

// Snapshotter copies a file somewhere safe before it is overwritten and
// returns an identifier for the copy.
type Snapshotter interface {
	Backup(path string) (string, error)
}

// Catalog is a label plus entries grouped by category key.
type Catalog struct {
	Label         string
	Categories    map[string][]string
	PreviousCount int
	// Footer is the footer recorded by the last write, nil when the file had
	// none or it could not be read.
	Footer *Footer
}

// New returns an empty catalog with the given label.
func New(label string) *Catalog {
	return &Catalog{
		Label:      label,
		Categories: make(map[string][]string),
	}
}

// Append adds entry to the category key, creating it when absent.
func (c *Catalog) Append(key, entry string) {
	c.Categories[key] = append(c.Categories[key], entry)
}

// AppendUnique adds entry to the category key unless already present and
// reports whether it was added.
func (c *Catalog) AppendUnique(key, entry string) bool {
	if c.Has(key, entry) {
		return false
	}
	c.Append(key, entry)
	return true
}

// Ensure creates the category key with no entries when absent.
func (c *Catalog) Ensure(key string) {
	if _, ok := c.Categories[key]; !ok {
		c.Categories[key] = []string{}
	}
}

// Has reports whether entry is present in category key.
func (c *Catalog) Has(key, entry string) bool {
	return slices.Contains(c.Categories[key], entry)
}

// Keys returns the category keys in ascending lexicographic order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Categories))
	for k := range c.Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.Categories {
		n += len(entries)
	}
	return n
}

// SortEntries orders the entries of every category with s.
func (c *Catalog) SortEntries(s sorter.Strategy) {
	for _, entries := range c.Categories {
		sorter.Sort(entries, s)
	}
}
