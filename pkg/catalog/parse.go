package catalog

import (
	"strings"

	"github.com/rs/zerolog"

	"tableflip.dev/tcutils/pkg/logging"
)

// ParseOptions tunes catalog parsing.
type ParseOptions struct {
	// CatalogFile lines naming the catalog itself never open a category.
	CatalogFile string
	// Log receives footer and snapshot warnings. Nil selects the default
	// logger.
	Log *zerolog.Logger
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.CatalogFile == "" {
		o.CatalogFile = DefaultCatalogFile
	}
	if o.Log == nil {
		o.Log = logging.Default()
	}
	return o
}

// ReadOptions tunes ReadCatalog.
type ReadOptions struct {
	ParseOptions

	Lines     LineSource
	Snapshots Snapshotter
	// DryRun skips the snapshot.
	DryRun bool
}

// ReadCatalog loads the catalog file at path. It returns a nil catalog and a
// nil error when the file is missing or empty. Unless DryRun is set, the file
// is snapshotted before parsing; a failed snapshot is logged and parsing
// continues.
func ReadCatalog(path string, opts ReadOptions) (*Catalog, error) {
	opts.ParseOptions = opts.ParseOptions.withDefaults()

	lines, err := opts.Lines.Read(path, CatalogEncoding)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	if !opts.DryRun && opts.Snapshots != nil {
		id, err := opts.Snapshots.Backup(path)
		if err != nil {
			opts.Log.Warn().Err(&IOError{Op: "backup", Path: path, Err: err}).Msg("snapshot failed, continuing without one")
		} else {
			opts.Log.Debug().Str("path", path).Str("snapshot", id).Msg("catalog snapshotted")
		}
	}

	return ParseCatalog(lines, opts.ParseOptions), nil
}

// ParseCatalog builds a catalog from decoded catalog lines. lines must not
// be empty.
//
// Line 0 is the label. A trailing footer line sets PreviousCount. In the
// body, an unindented line opens a category and indented lines are its
// entries. Categories left without entries are legacy flat lines and are
// demoted to entries of the Sentinel category.
func ParseCatalog(lines []string, opts ParseOptions) *Catalog {
	opts = opts.withDefaults()

	c := New(strings.TrimSpace(lines[0]))

	end := len(lines)
	if end > 1 {
		f, ok, err := ParseFooter(lines[end-1])
		if ok {
			end--
			if err != nil {
				opts.Log.Warn().Err(err).Msg("ignoring unreadable footer, previous count is 0")
			} else {
				c.Footer = &f
				c.PreviousCount = f.Count
			}
		}
	}

	var (
		key   string
		open  bool
		order []string
	)
	for _, line := range lines[1:end] {
		trimmed := strings.Trim(line, " \t")
		if trimmed == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if !open {
				c.AppendUnique(Sentinel, trimmed)
				continue
			}
			c.AppendUnique(key, trimmed)
			continue
		}

		line = strings.TrimRight(line, " \t")
		if line == c.Label || strings.Contains(line, opts.CatalogFile) {
			continue
		}
		key, open = line, true
		if _, seen := c.Categories[key]; !seen {
			order = append(order, key)
		}
		c.Ensure(key)
	}

	var stray []string
	for _, k := range order {
		if len(c.Categories[k]) > 0 {
			continue
		}
		delete(c.Categories, k)
		if k != Sentinel {
			stray = append(stray, k)
		}
	}
	for _, k := range stray {
		c.AppendUnique(Sentinel, k)
	}

	return c
}
