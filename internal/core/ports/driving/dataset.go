package driving

import (
	"context"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

// DatasetInfo summarises a named dataset for display.
type DatasetInfo struct {
	// Name is the catalog lookup key.
	Name string

	// Description is a one-line summary of the dataset.
	Description string

	// URL is the remote location the dataset is fetched from.
	URL string
}

// DatasetService exposes named datasets to driving adapters.
type DatasetService interface {
	// List returns all known datasets in catalog order.
	List(ctx context.Context) ([]DatasetInfo, error)

	// Load fetches, caches, and parses the named dataset into a
	// dynamic table. Returns domain.ErrNotFound for unknown names.
	Load(ctx context.Context, name string) (*domain.Table, error)
}
