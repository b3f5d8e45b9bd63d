package orderRepo

import (
	"context"
	"fmt"
	"sync"

	"cleancare/models"
)

// MemoryOrderRepo is an in-memory OrderRepository used by tests and
// single-node development runs.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders []models.Order
	byID   map[string]struct{}
}

// NewMemoryOrderRepo creates an empty in-memory order repository.
func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{byID: make(map[string]struct{})}
}

// Insert appends an order; duplicate ids are rejected.
func (r *MemoryOrderRepo) Insert(order *models.Order) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("order repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; exists {
		return fmt.Errorf("order repository: duplicate id %s", order.ID)
	}
	r.byID[order.ID] = struct{}{}
	r.orders = append(r.orders, *order)
	return nil
}

// ListByUser returns the user's orders in insertion order.
func (r *MemoryOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
