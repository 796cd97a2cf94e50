package docstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store and keeps recently read payloads in memory.
// Concurrent Gets for the same name are collapsed into one backend read via
// singleflight; Put and Delete invalidate the cached entry.
type CachingStore struct {
	inner Store
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewCachingStore creates a CachingStore over inner.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Get reads a payload, preferring the cache. Cache misses for the same name
// share one backend read.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		data, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Put writes through to the backend and invalidates the cached entry. The
// entry is dropped rather than updated so a failed backend write can never
// leave the cache ahead of the store. Invalidation runs again after the
// write: a Get racing the backend write can re-cache the previous payload,
// and the second pass drops it.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	err := s.inner.Put(ctx, name, data)
	s.invalidate(name)
	return err
}

// Delete removes a payload and invalidates the cached entry, again on both
// sides of the backend call for the same reason as Put.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	err := s.inner.Delete(ctx, name)
	s.invalidate(name)
	return err
}

// List passes through to the backend.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CachingStore) invalidate(name string) {
	s.group.Forget(name)
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
}
