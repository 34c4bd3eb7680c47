package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/contactfind/contactfind"
)

// Ensure Cache implements contactfind.Cache at compile time.
var _ contactfind.Cache = (*Cache)(nil)

// Cache is a file-backed key-value cache. Keys are hashed with xxhash so
// arbitrary strings (URLs, document text) can be used as keys, and each
// entry is one file under the cache directory. Writes are atomic: values
// are written to a temp file and renamed into place.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir, creating the directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "creating cache directory %s: %v", dir, err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%016x", xxhash.Sum64String(key)))
}

// Get returns the cached value for key, or false on a miss. Read failures
// other than absence are treated as misses.
func (c *Cache) Get(key string) (string, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Put stores the value for key.
func (c *Cache) Put(key, value string) error {
	final := c.path(key)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return contactfind.Errorf(contactfind.EINTERNAL, "writing cache entry: %v", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return contactfind.Errorf(contactfind.EINTERNAL, "committing cache entry: %v", err)
	}
	return nil
}
