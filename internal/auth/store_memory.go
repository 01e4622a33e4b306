package auth

import (
	"context"
	"sync"
)

type MemStore struct {
	mu      sync.RWMutex
	byEmail map[string]User
}

func NewMemStore() *MemStore {
	return &MemStore{byEmail: make(map[string]User)}
}

func (s *MemStore) Create(_ context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return ErrEmailExists
	}
	s.byEmail[u.Email] = u
	return nil
}

func (s *MemStore) Verify(_ context.Context, email, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byEmail[email]
	s.mu.RUnlock()

	if !ok || u.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
