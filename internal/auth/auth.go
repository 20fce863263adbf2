package auth

import (
	"sync"
)

// TokenStore persists the session's bearer credential
type TokenStore interface {
	SaveToken(token string) error
	LoadToken() (string, bool)
	ClearToken() error
}

// NewMemoryTokenStore creates a token store that lives only as long as the process
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// MemoryTokenStore is an in-process TokenStore
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// SaveToken saves the token, overwriting any prior value
func (s *MemoryTokenStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// LoadToken returns the saved token, if any
func (s *MemoryTokenStore) LoadToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// ClearToken removes the token
func (s *MemoryTokenStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
