package driven

import "context"

// Fetcher retrieves raw bytes from a remote location.
// A single call, no retries: transport failures surface to the caller.
type Fetcher interface {
	// Fetch performs a plain GET against url and returns the body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
