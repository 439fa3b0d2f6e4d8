// Package catalog names datasets and exposes them through the driving
// port. Built-in entries are ordinary consumers of the dataset
// constructors; user-supplied catalogs are loaded from YAML files.
package catalog

import (
	"context"
	"fmt"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/core/ports/driving"
)

// LoadFunc loads an entry's records into a dynamic table.
type LoadFunc func(ctx context.Context, cacheDir string) (*domain.Table, error)

// Entry is a named dataset declaration.
type Entry struct {
	// Name is the catalog lookup key.
	Name string

	// Description is a one-line summary for listings.
	Description string

	// Source is where the raw bytes come from.
	Source domain.Source

	// Load fetches and parses the dataset.
	Load LoadFunc
}

// Ensure Service implements the interface.
var _ driving.DatasetService = (*Service)(nil)

// Service serves named datasets from a fixed entry list.
type Service struct {
	entries  []Entry
	cacheDir string
}

// NewService creates a dataset service over entries, loading into
// cacheDir.
func NewService(entries []Entry, cacheDir string) *Service {
	return &Service{
		entries:  entries,
		cacheDir: cacheDir,
	}
}

// List returns all entries in catalog order.
func (s *Service) List(_ context.Context) ([]driving.DatasetInfo, error) {
	infos := make([]driving.DatasetInfo, 0, len(s.entries))
	for _, e := range s.entries {
		infos = append(infos, driving.DatasetInfo{
			Name:        e.Name,
			Description: e.Description,
			URL:         e.Source.URL,
		})
	}
	return infos, nil
}

// Load fetches, caches, and parses the named dataset.
func (s *Service) Load(ctx context.Context, name string) (*domain.Table, error) {
	for _, e := range s.entries {
		if e.Name == name {
			return e.Load(ctx, s.cacheDir)
		}
	}
	return nil, fmt.Errorf("%w: dataset %q", domain.ErrNotFound, name)
}
