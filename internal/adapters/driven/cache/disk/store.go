// Package disk implements the cache store as flat files on local disk.
//
// Cache format: one file per source, named "ds" followed by the 16-digit
// lowercase hex rendering of the 64-bit xxHash of the source identifier.
// The hash choice is part of the on-disk format; changing it silently
// invalidates every existing cache.
package disk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CacheStore = (*Store)(nil)

// Store is a filesystem-backed cache store. It holds no state; all
// paths are derived from the arguments, so concurrent use is safe with
// respect to data correctness (writers race, last rename wins).
type Store struct{}

// New creates a new disk cache store.
func New() *Store {
	return &Store{}
}

// Path returns the cache file path for identifier under cacheDir.
// Stable across runs and platforms for the same identifier.
func (s *Store) Path(cacheDir, identifier string) string {
	return filepath.Join(cacheDir, fmt.Sprintf("ds%016x", xxhash.Sum64String(identifier)))
}

// Exists reports whether a regular file is present at path.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read returns the cached bytes at path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCacheIO, path, err)
	}
	return data, nil
}

// Write stores data at path, creating the parent directory if missing.
// The write goes to a uniquely named temp file first and is renamed into
// place, so a reader never observes a half-written cache entry.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrCacheIO, dir, err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrCacheIO, tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %v", domain.ErrCacheIO, path, err)
	}
	return nil
}
