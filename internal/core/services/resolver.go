package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/datakit-cli/internal/logger"
)

// Resolver turns an abstract Source into raw bytes, consulting the
// cache store before touching the network. For a given identifier and
// cache directory, every call after the first successful fetch returns
// byte-identical content without a network request.
type Resolver struct {
	cache   driven.CacheStore
	fetcher driven.Fetcher
}

// NewResolver creates a resolver over the given cache store and fetcher.
func NewResolver(cache driven.CacheStore, fetcher driven.Fetcher) *Resolver {
	return &Resolver{
		cache:   cache,
		fetcher: fetcher,
	}
}

// Resolve returns the raw bytes for src, fetching and caching on miss.
// Network failures wrap domain.ErrFetch with the offending URL; cache
// failures wrap domain.ErrCacheIO.
func (r *Resolver) Resolve(ctx context.Context, cacheDir string, src domain.Source) ([]byte, error) {
	switch src.Kind {
	case domain.SourceURL:
		return r.resolveURL(ctx, cacheDir, src.URL)
	default:
		return nil, fmt.Errorf("%w: source kind %d", domain.ErrUnsupportedType, src.Kind)
	}
}

func (r *Resolver) resolveURL(ctx context.Context, cacheDir, url string) ([]byte, error) {
	path := r.cache.Path(cacheDir, url)

	if r.cache.Exists(path) {
		logger.Debug("cache hit: %s -> %s", url, path)
		return r.cache.Read(path)
	}

	logger.Debug("cache miss, fetching %s", url)
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Write(path, body); err != nil {
		return nil, err
	}

	logger.Debug("cached %d bytes at %s", len(body), path)
	return body, nil
}
