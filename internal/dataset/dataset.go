// Package dataset provides the Dataset abstraction: a deferred
// computation that, given a cache directory, fetches, caches, and
// parses a remote source into a sequence of typed records.
//
// Datasets own no resources; every load acquires what it needs and
// releases it before returning. Concurrent loads against the same
// cache directory are safe with respect to data correctness (the
// cache path is deterministic and fetches are idempotent) but may
// duplicate network requests.
package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/datakit-cli/internal/adapters/driven/cache/disk"
	"github.com/custodia-labs/datakit-cli/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/core/services"
	"github.com/custodia-labs/datakit-cli/internal/parsers/delimited"
	"github.com/custodia-labs/datakit-cli/internal/parsers/document"
)

// cacheSubdir is the fixed directory name appended to the system temp
// dir for the default cache location. Part of the cache layout, along
// with the hash documented in the disk store.
const cacheSubdir = "datakit"

// Dataset is a deferred computation producing typed records.
// Load may block on local I/O and (on a cache miss) on the network.
type Dataset[T any] interface {
	// Load fetches, caches, and parses the dataset's source,
	// returning records in source order.
	Load(ctx context.Context, cacheDir string) ([]T, error)
}

var (
	mu       sync.RWMutex
	resolver = services.NewResolver(disk.New(), httpfetch.New())
)

// SetResolver replaces the resolver used by all datasets, returning
// the previous one. The CLI installs a config-tuned resolver at
// startup; tests install one pointed at a local server.
func SetResolver(r *services.Resolver) *services.Resolver {
	mu.Lock()
	defer mu.Unlock()
	prev := resolver
	resolver = r
	return prev
}

func activeResolver() *services.Resolver {
	mu.RLock()
	defer mu.RUnlock()
	return resolver
}

// DefaultCacheDir returns the cache directory used by Load: the
// platform temp dir plus a fixed subdirectory.
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), cacheSubdir)
}

// Load is the top-level entry point: it resolves the default cache
// directory and invokes the dataset.
func Load[T any](ctx context.Context, ds Dataset[T]) ([]T, error) {
	return ds.Load(ctx, DefaultCacheDir())
}

// Option adjusts how a delimited dataset parses its payload.
type Option func(*delimited.Options)

// WithSeparator sets the field delimiter (for semicolon- or
// tab-delimited sources).
func WithSeparator(sep byte) Option {
	return func(o *delimited.Options) {
		o.Separator = sep
	}
}

// WithPreprocess installs a byte-level transform applied to the raw
// payload before parsing.
func WithPreprocess(t delimited.Transform) Option {
	return func(o *delimited.Options) {
		o.Preprocess = t
	}
}

// delimitedDataset parses delimited text into records of T.
type delimitedDataset[T any] struct {
	src  domain.Source
	opts delimited.Options
}

func (d *delimitedDataset[T]) Load(ctx context.Context, cacheDir string) ([]T, error) {
	raw, err := activeResolver().Resolve(ctx, cacheDir, d.src)
	if err != nil {
		return nil, err
	}
	return delimited.Records[T](raw, d.opts)
}

// FromDelimited declares a headerless delimited-text dataset decoded
// positionally into T.
func FromDelimited[T any](src domain.Source, opts ...Option) Dataset[T] {
	d := &delimitedDataset[T]{src: src}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// FromDelimitedHeadered declares a delimited-text dataset whose first
// row names the columns; records decode by name.
func FromDelimitedHeadered[T any](src domain.Source, opts ...Option) Dataset[T] {
	d := &delimitedDataset[T]{src: src, opts: delimited.Options{Headered: true}}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// documentDataset parses a structured document (JSON) into records of T.
type documentDataset[T any] struct {
	src domain.Source
}

func (d *documentDataset[T]) Load(ctx context.Context, cacheDir string) ([]T, error) {
	raw, err := activeResolver().Resolve(ctx, cacheDir, d.src)
	if err != nil {
		return nil, err
	}
	return document.Records[T](raw)
}

// FromDocument declares a structured-document dataset decoded
// wholesale into a sequence of T.
func FromDocument[T any](src domain.Source) Dataset[T] {
	return &documentDataset[T]{src: src}
}
