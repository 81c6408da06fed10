// Package list runs the manifest to catalog pipeline behind `tcutils --list`.
package list

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/tcutils/pkg/catalog"
	"tableflip.dev/tcutils/pkg/clipboard"
	"tableflip.dev/tcutils/pkg/logging"
	"tableflip.dev/tcutils/pkg/printers"
	"tableflip.dev/tcutils/pkg/sorter"
	"tableflip.dev/tcutils/pkg/store"
)

// Printer shows a rendered catalog to the user.
type Printer interface {
	Document(doc *catalog.Document)
}

// List merges the manifest at ManifestPath into the catalog file inside Dir.
type List struct {
	ManifestPath string
	Dir          string
	CatalogFile  string
	Marker       string

	Strategy    sorter.Strategy
	FooterStyle catalog.FooterStyle

	// DryRun skips the snapshot and the catalog write.
	DryRun          bool
	IgnoreClipboard bool

	Lines     catalog.LineSource
	Snapshots catalog.Snapshotter
	Clipboard clipboard.Sink
	Printer   Printer
	// Write replaces the catalog file; defaults to store.WriteCatalog.
	Write func(path, text string) error
	Now   func() time.Time
	Log   *zerolog.Logger
}

// Result reports what a run did.
type Result struct {
	CatalogPath string
	Document    *catalog.Document
	Changed     bool
	Written     bool
	Copied      bool
}

func (l *List) defaults() {
	if l.CatalogFile == "" {
		l.CatalogFile = catalog.DefaultCatalogFile
	}
	if l.Marker == "" {
		l.Marker = catalog.DefaultMarker
	}
	if l.Strategy == nil {
		l.Strategy, _ = sorter.Parse(sorter.NameNone, sorter.NewPatterns())
	}
	if l.Lines == nil {
		l.Lines = store.FileSource{}
	}
	if l.Clipboard == nil {
		l.Clipboard = clipboard.System{}
	}
	if l.Printer == nil {
		l.Printer = &printers.PrettyPrint{}
	}
	if l.Write == nil {
		l.Write = store.WriteCatalog
	}
	if l.Log == nil {
		l.Log = logging.Default()
	}
}

// Do runs the pipeline and prints the resulting catalog.
func (l *List) Do(ctx context.Context) error {
	_, err := l.Run(ctx)
	return err
}

// Run is Do returning the run's Result. Only a failure to read the manifest
// or an existing catalog is returned as an error; snapshot, write and
// clipboard failures are logged as warnings.
func (l *List) Run(_ context.Context) (*Result, error) {
	l.defaults()

	manifest, err := catalog.ParseManifest(l.ManifestPath, l.Lines, catalog.ManifestOptions{
		Marker:      l.Marker,
		CatalogFile: l.CatalogFile,
	})
	if err != nil {
		return nil, err
	}

	path := filepath.Join(l.Dir, l.CatalogFile)
	existing, err := catalog.ReadCatalog(path, catalog.ReadOptions{
		ParseOptions: catalog.ParseOptions{CatalogFile: l.CatalogFile, Log: l.Log},
		Lines:        l.Lines,
		Snapshots:    l.Snapshots,
		DryRun:       l.DryRun,
	})
	if err != nil {
		return nil, err
	}
	l.Log.Debug().Str("catalog", path).Bool("found", existing != nil).Int("manifest", manifest.Len()).Msg("inputs loaded")

	merged := catalog.Merge(manifest, existing)
	merged.SortEntries(l.Strategy)

	doc, err := catalog.Render(merged, catalog.RenderOptions{Style: l.FooterStyle, Now: l.Now})
	res := &Result{CatalogPath: path, Document: doc, Changed: true}
	switch {
	case errors.Is(err, catalog.ErrNoChange):
		res.Changed = false
		l.Log.Info().Int("count", doc.Count).Msg(catalog.ErrNoChange.Error())
	case err != nil:
		return nil, err
	}

	if res.Changed && !l.DryRun {
		if err := l.Write(path, doc.Text()); err != nil {
			l.Log.Warn().Err(err).Str("catalog", path).Msg("catalog not written")
		} else {
			res.Written = true
			l.Log.Debug().Str("catalog", path).Int("count", doc.Count).Msg("catalog written")
		}
	}

	if !l.IgnoreClipboard {
		if err := l.Clipboard.SetText(doc.ClipboardText()); err != nil {
			l.Log.Warn().Err(err).Msg("catalog not copied to the clipboard")
		} else {
			res.Copied = true
		}
	}

	l.Printer.Document(doc)
	return res, nil
}
