package cart

import (
	"context"
	"sync"

	"cleancare/models"
)

// MemoryStore is an in-memory cart store used by tests and single-node
// development runs.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *MemoryStore) Save(ctx context.Context, userID string, c *models.Cart) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = *c
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
