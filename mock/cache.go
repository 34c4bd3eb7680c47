package mock

import "github.com/contactfind/contactfind"

var _ contactfind.Cache = (*Cache)(nil)

// Cache is a mock implementation of contactfind.Cache.
type Cache struct {
	GetFn func(key string) (string, bool)
	PutFn func(key, value string) error
}

func (c *Cache) Get(key string) (string, bool) {
	return c.GetFn(key)
}

func (c *Cache) Put(key, value string) error {
	return c.PutFn(key, value)
}
