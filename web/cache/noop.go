package cache

import "time"

// noopStore is selected when caching is disabled process-wide: every read
// misses and writes and invalidations do nothing. Used for environments where
// per-process cache coherence cannot be tolerated at all.
type noopStore struct{}

func (noopStore) Get(string) (string, error) {
	return "", ErrMiss
}

func (noopStore) Set(string, string, time.Duration) error {
	return nil
}

func (noopStore) Delete(string) error {
	return nil
}

func (noopStore) Close() error {
	return nil
}
