package driven

// CacheStore maps source identifiers to local files and moves raw bytes
// in and out of them. Implementations do no locking: concurrent writers
// for the same identifier race benignly (last write wins, content for a
// given identifier is assumed identical).
type CacheStore interface {
	// Path returns the deterministic cache file path for an identifier
	// under cacheDir. The mapping must be stable across process runs.
	Path(cacheDir, identifier string) string

	// Exists reports whether a cache file is present at path.
	Exists(path string) bool

	// Read returns the cached bytes at path.
	Read(path string) ([]byte, error)

	// Write stores data at path, creating the parent directory if
	// missing. Directory creation is idempotent.
	Write(path string, data []byte) error
}
