package store

import (
	"context"
	"sync"
)

// memoryKeyValueStore keeps everything in process memory. Used for tests and
// the ":memory:" client DSN.
type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryKeyValueStore creates an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string][]byte)}
}

func (m *memoryKeyValueStore) GetBytes(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *memoryKeyValueStore) SetBytes(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKeyValueStore) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := m.GetBytes(ctx, key)
	return decodeBool(value), err
}

func (m *memoryKeyValueStore) SetBool(ctx context.Context, key string, value bool) error {
	return m.SetBytes(ctx, key, encodeBool(value))
}

func (m *memoryKeyValueStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *memoryKeyValueStore) Close() error {
	return nil
}

func encodeBool(value bool) []byte {
	if value {
		return []byte{1}
	}
	return []byte{0}
}

func decodeBool(value []byte) bool {
	return len(value) == 1 && value[0] == 1
}
