package orderRepo

import (
	"context"

	"cleancare/models"
)

// OrderRepository is the append-only persistence contract for orders.
// Orders are never updated or removed once written.
type OrderRepository interface {
	Insert(order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}
