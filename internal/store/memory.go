package store

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu        sync.RWMutex
	announced map[string]time.Time
}

// NewMemoryStore creates a store that lives as long as the process
func NewMemoryStore() Store {
	return &memoryStore{announced: make(map[string]time.Time)}
}

func (s *memoryStore) IsBirthdayAnnounced(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.announced[key]
	return ok, nil
}

func (s *memoryStore) MarkBirthdayAnnounced(_ context.Context, key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announced[key] = at
	return nil
}
