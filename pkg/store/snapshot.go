package store

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// Snapshots keeps best-effort copies of catalog files in a scratch
// directory, under randomized names grouped by catalog directory.
type Snapshots struct {
	d        *diskv.Diskv
	basePath string
	newID    func() string
}

// NewSnapshots returns a snapshot store rooted at basePath.
func NewSnapshots(basePath string) *Snapshots {
	return &Snapshots{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
		}),
		basePath: basePath,
		newID:    uuid.NewString,
	}
}

// BasePath returns the scratch directory holding the snapshots.
func (s *Snapshots) BasePath() string {
	return s.basePath
}

// Backup copies the file at path into the store and returns the snapshot
// key. A missing file is not an error and yields an empty key.
func (s *Snapshots) Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("store: read %s: %w", path, err)
	}

	key := toKey(path, s.newID())
	if err := s.d.Write(key, data); err != nil {
		return "", fmt.Errorf("store: write snapshot %s: %w", key, err)
	}
	return key, nil
}

// List returns the snapshot keys taken of the catalog at path, sorted.
func (s *Snapshots) List(ctx context.Context, path string) []string {
	prefix := dirKey(path) + "-"
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Read returns the contents of the snapshot stored under key.
func (s *Snapshots) Read(key string) ([]byte, error) {
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot %s: %w", key, err)
	}
	return data, nil
}

// keyToPathTransform maps `dirkey-id-name` to dirkey/id-name. The dir key is
// hex and never holds a dash.
func keyToPathTransform(s string) *diskv.PathKey {
	dir, file, _ := strings.Cut(s, "-")
	return &diskv.PathKey{
		Path:     []string{dir},
		FileName: file,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `dirkey-id-name` for a snapshot of path.
func toKey(path, id string) string {
	return fmt.Sprintf("%s-%s-%s", dirKey(path), id, filepath.Base(path))
}

// dirKey identifies the directory holding path.
func dirKey(path string) string {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	sum := md5.Sum([]byte(dir))
	return fmt.Sprintf("%x", sum[:8])
}
