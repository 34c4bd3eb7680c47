package contactfind

// Cache is a string key-value cache with an injected storage backend.
// Used to memoize expensive derivations (extracted company-name lists keyed
// by document text hash, fetched page content keyed by URL hash) so repeated
// runs produce consistent output.
//
// Implementations must be safe for concurrent use. A miss is reported via
// the boolean, never an error.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, value string) error
}
