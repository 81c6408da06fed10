package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"tableflip.dev/tcutils/pkg/glyph"
)

// ManifestOptions tunes manifest parsing. Zero values select the defaults.
type ManifestOptions struct {
	// Marker must appear in the manifest path.
	Marker string
	// CatalogFile lines naming the catalog itself are skipped.
	CatalogFile string
}

func (o ManifestOptions) withDefaults() ManifestOptions {
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if o.CatalogFile == "" {
		o.CatalogFile = DefaultCatalogFile
	}
	return o
}

// ParseManifest reads the manifest at path and groups the listed files by
// the category key embedded in their names. The label is the folder holding
// the first listed file.
func ParseManifest(path string, src LineSource, opts ManifestOptions) (*Catalog, error) {
	opts = opts.withDefaults()
	if !strings.Contains(path, opts.Marker) {
		return nil, fmt.Errorf("catalog: %s is not a manifest: %w", path, ErrNotFound)
	}

	lines, err := src.Read(path, ManifestEncoding)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("catalog: manifest %s: %w", path, ErrUnexpectedEOF)
	}

	label := parentName(paths[0])
	if label == "" {
		return nil, fmt.Errorf("catalog: manifest %s: no folder in %q: %w", path, paths[0], ErrNotFound)
	}

	c := New(label)
	for _, p := range paths {
		if strings.Contains(p, opts.CatalogFile) {
			continue
		}
		key, subtitle := splitName(baseName(p), label)
		c.Append(key, subtitle)
	}
	return c, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// components splits p on both slash styles so Windows manifests parse on any
// platform.
func components(p string) []string {
	return strings.FieldsFunc(p, isSeparator)
}

// parentName returns the name of the folder directly holding p.
func parentName(p string) string {
	parts := components(p)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// baseName returns the directory name when p ends in a separator and the
// file stem otherwise.
func baseName(p string) string {
	parts := components(p)
	if len(parts) == 0 {
		return ""
	}
	name := parts[len(parts)-1]
	if r := p[len(p)-1]; isSeparator(rune(r)) {
		return name
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// splitName separates a base name into category key and subtitle.
func splitName(name, label string) (string, string) {
	parts := strings.Split(name, string(glyph.Separator))
	if len(parts) == 1 {
		return Sentinel, name
	}
	last := parts[len(parts)-1]
	subtitle := strings.TrimLeftFunc(strings.TrimPrefix(last, label), unicode.IsSpace)
	if subtitle == "" {
		subtitle = strings.TrimSpace(last)
	}
	return parts[0], subtitle
}
