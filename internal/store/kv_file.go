package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKeyValueStore keeps every key in one JSON document that is rewritten
// atomically on each change.
type fileKeyValueStore struct {
	path string

	mu    sync.RWMutex
	items map[string][]byte
}

type filePersistedState struct {
	Items map[string][]byte `json:"items"`
}

// NewFileKeyValueStore opens (or lazily creates) the JSON file at path.
func NewFileKeyValueStore(path string) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:  path,
		items: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) GetBytes(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (s *fileKeyValueStore) SetBytes(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = append([]byte(nil), value...)
	return s.persist()
}

func (s *fileKeyValueStore) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := s.GetBytes(ctx, key)
	return decodeBool(value), err
}

func (s *fileKeyValueStore) SetBool(ctx context.Context, key string, value bool) error {
	return s.SetBytes(ctx, key, encodeBool(value))
}

func (s *fileKeyValueStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return nil
	}
	delete(s.items, key)
	return s.persist()
}

func (s *fileKeyValueStore) Close() error {
	return nil
}

func (s *fileKeyValueStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local storage file: %w", ErrCorruptedBlob, err)
	}

	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

// persist must be called with s.mu held.
func (s *fileKeyValueStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
