package history

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store, used when no database is wired and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	values  map[string]string
	Err     error
	ReadErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) GetSetting(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return "", false, s.ReadErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) SetSetting(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.values[key] = value
	return nil
}
