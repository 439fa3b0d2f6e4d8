package domain

// SourceKind discriminates the variants of a Source.
type SourceKind int

const (
	// SourceURL identifies a source fetched over HTTP(S).
	SourceURL SourceKind = iota
)

// Source describes where raw dataset bytes originate.
// It is immutable after construction. Only the URL variant exists today;
// the kind tag leaves room for local-file or embedded variants later.
type Source struct {
	// Kind is the variant tag.
	Kind SourceKind

	// URL is the remote location for SourceURL sources.
	URL string
}

// URLSource constructs a Source for a remote HTTP(S) location.
func URLSource(url string) Source {
	return Source{Kind: SourceURL, URL: url}
}

// Identifier returns the stable string used to key the cache.
// For URL sources this is the URL itself.
func (s Source) Identifier() string {
	return s.URL
}
