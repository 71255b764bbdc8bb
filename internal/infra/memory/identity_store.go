package memory

import (
	"context"
	"sync"
)

// IdentityStore keeps session identifiers for the lifetime of the process.
type IdentityStore struct {
	mu  sync.RWMutex
	ids map[string]string
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{ids: make(map[string]string)}
}

func (s *IdentityStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.ids[key]
	return id, ok, nil
}

func (s *IdentityStore) SetIfAbsent(_ context.Context, key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.ids[key]; ok {
		return id, nil
	}
	s.ids[key] = value
	return value, nil
}
