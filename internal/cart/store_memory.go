package cart

import (
	"context"
	"slices"
	"sync"
)

// MemStore guards the map itself; it does not make a Get/Put sequence
// atomic. That is the Locker's job.
type MemStore struct {
	mu sync.RWMutex
	m  map[string][]Line
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]Line)}
}

func (s *MemStore) Get(_ context.Context, userID string) ([]Line, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.m[userID]
	if !ok {
		return nil, false, nil
	}
	return cloneLines(lines), true, nil
}

func (s *MemStore) Put(_ context.Context, userID string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[userID] = cloneLines(lines)
	return nil
}

func cloneLines(lines []Line) []Line {
	if lines == nil {
		return []Line{}
	}
	return slices.Clone(lines)
}
