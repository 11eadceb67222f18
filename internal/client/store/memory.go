package store

import (
	"context"
	"sync"

	"github.com/morikawa/riskadvisor/internal/client/models"
)

// MemoryStore is an in-process Store used in tests and ephemeral runs.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	hasCred    bool
	cachedUser *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Credential(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCred {
		return "", nil
	}
	return s.credential, nil
}

func (s *MemoryStore) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = token
	s.hasCred = true
	return nil
}

func (s *MemoryStore) ClearCredential(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.hasCred = false
	return nil
}

func (s *MemoryStore) CachedUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cachedUser == nil {
		return nil, nil
	}
	u := *s.cachedUser
	return &u, nil
}

func (s *MemoryStore) SetCachedUser(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cachedUser = &u
	return nil
}

func (s *MemoryStore) ClearCachedUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cachedUser = nil
	return nil
}

func (s *MemoryStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.hasCred = false
	s.cachedUser = nil
	return nil
}
