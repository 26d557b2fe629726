package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryStore keeps entries in process memory. Expired entries are evicted
// lazily on read and by a janitor sweep running every ttl/2. With horizontal
// scaling each process holds its own store, so an invalidation fired on one
// instance leaves the others stale until their TTL elapses; that weakening is
// accepted, see DESIGN.md.
type memoryStore struct {
	c *gocache.Cache
}

func newMemoryStore(ttl time.Duration) *memoryStore {
	sweep := ttl / 2
	if sweep < time.Second {
		sweep = time.Second
	}
	return &memoryStore{c: gocache.New(ttl, sweep)}
}

func (m *memoryStore) Get(key string) (string, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", ErrMiss
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrMiss
	}
	return s, nil
}

func (m *memoryStore) Set(key string, value string, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *memoryStore) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

func (m *memoryStore) Close() error {
	m.c.Flush()
	return nil
}
