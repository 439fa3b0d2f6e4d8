package domain

import "errors"

// Domain errors represent dataset load failures.
// Every failure is fatal to the load that raised it: there are no
// retries, partial results, or best-effort recovery anywhere in the
// pipeline. Callers match with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source kind, catalog
	// format, or record type the decoder cannot target.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFetch indicates a network failure while resolving a source.
	ErrFetch = errors.New("fetch failed")

	// ErrCacheIO indicates a local filesystem failure in the cache store.
	ErrCacheIO = errors.New("cache io failed")

	// ErrParse indicates a malformed payload or a type mismatch during
	// decoding. The wrapped message carries the decoder's diagnostic.
	ErrParse = errors.New("parse failed")

	// ErrFieldDecode indicates a single scalar value failed its textual
	// parse. Record decoding treats this as fatal for the whole load.
	ErrFieldDecode = errors.New("unknown")
)
