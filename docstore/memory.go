package docstore

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing.
// It keeps payloads in memory without any filesystem dependency.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewMemoryStore creates a new in-memory payload store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payloads: make(map[string][]byte),
	}
}

// Get reads the full payload stored under name.
func (m *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.payloads[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Put writes a payload atomically.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	m.payloads[name] = copied
	return nil
}

// Delete removes a payload.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.payloads, name)
	return nil
}

// List returns all payload names with the given prefix, sorted.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.payloads {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
