// Package httpfetch implements the Fetcher port over plain HTTP GET.
//
// No auth, no custom headers, no retries. Redirects follow the
// transport default. Both http and https URLs work; callers needing
// transport security must use an https source.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/datakit-cli/internal/logger"
)

// DefaultTimeout bounds a single fetch, including body read.
// Dataset hosts can be slow, so the default is generous.
const DefaultTimeout = 30 * time.Second

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher performs unauthenticated GET requests with an optional
// client-side rate limiter.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithRateLimit throttles fetches to rps requests per second.
// Zero or negative rps disables throttling.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to
// trust an httptest TLS server's certificate.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// New creates a fetcher with the default timeout and no rate limit.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET against url and returns the response body.
// Any transport error or non-200 status wraps domain.ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetch, url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetch, url, err)
	}

	logger.Debug("GET %s", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %s", domain.ErrFetch, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", domain.ErrFetch, url, err)
	}
	return body, nil
}
