package kvstore

import "context"

// MemoryStore is an in-memory Store used by tests and throwaway runs.
type MemoryStore struct {
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, raw []byte) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.entries[key] = cp
	return nil
}

// Has reports whether key was ever written; tests use it to assert that
// defaults are not persisted on read.
func (m *MemoryStore) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}
