// Package cache provides the short-TTL response cache fronting expensive public
// reads. The backing store is selected once at process start: a no-op store when
// caching is disabled, an external redis when an address is configured, and an
// in-process TTL store otherwise. Invalidation is whole-key deletion only;
// entries are never patched in place.
package cache

import (
	"errors"
	"time"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/logger"
	"github.com/goccy/go-json"
	"go.uber.org/atomic"
)

// Keys of the cached public read models. Every mutation of the corresponding
// resource kind must delete its key before reporting success.
const (
	KeyNewsPublic          = "news:public"
	KeyAnnouncementsPublic = "announcements:public"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is the minimal contract every backend satisfies. Implementations are
// internally synchronized and safe for concurrent request handlers.
type Store interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is a no-op, not an error.
	Delete(key string) error
	Close() error
}

var (
	store      Store = noopStore{}
	defaultTTL       = 30 * time.Second

	hits   = atomic.NewInt64(0)
	misses = atomic.NewInt64(0)
)

// Init selects and initializes the backing store from configuration.
func Init() error {
	defaultTTL = config.GetCacheTTL()

	if !config.GetCacheEnabled() {
		store = noopStore{}
		logger.Info("cache disabled, all reads go to the database")
		return nil
	}

	if addr := config.GetRedisAddr(); addr != "" {
		s, err := newRedisStore(addr)
		if err != nil {
			return err
		}
		store = s
		logger.Infof("cache using redis at %s, TTL=%s", addr, defaultTTL)
		return nil
	}

	store = newMemoryStore(defaultTTL)
	logger.Infof("cache using in-process store, TTL=%s", defaultTTL)
	return nil
}

// SetStore swaps the backing store. Used by tests.
func SetStore(s Store) {
	store = s
}

// NewMemoryStore returns an in-process store with the given entry lifetime.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl)
}

func Close() error {
	return store.Close()
}

// DefaultTTL is the configured entry lifetime.
func DefaultTTL() time.Duration {
	return defaultTTL
}

// GetJSON reads key and unmarshals the stored payload into dest. A store
// failure counts as a miss: the caller falls back to the database.
func GetJSON(key string, dest any) error {
	val, err := store.Get(key)
	if err != nil {
		misses.Inc()
		return ErrMiss
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		misses.Inc()
		return ErrMiss
	}
	hits.Inc()
	return nil
}

// SetJSON stores value under key for the default TTL. Failures are logged and
// swallowed; the cache is never allowed to fail a request.
func SetJSON(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warningf("cache: marshal for key %s failed: %v", key, err)
		return
	}
	if err := store.Set(key, string(data), defaultTTL); err != nil {
		logger.Warningf("cache: set %s failed: %v", key, err)
	}
}

// Invalidate deletes key. Absent keys are a no-op. Failures are logged and
// swallowed, matching the fail-open contract of the read path.
func Invalidate(key string) {
	if err := store.Delete(key); err != nil {
		logger.Warningf("cache: invalidate %s failed: %v", key, err)
	}
}

// Stats reports hit/miss counters since process start.
func Stats() (int64, int64) {
	return hits.Load(), misses.Load()
}
