package order

import (
	"context"
	"sync"
	"time"

	orderRepo "cleancare/database/repository/order"
	userRepo "cleancare/database/repository/user"
	"cleancare/models"
	"cleancare/services/address"
	"cleancare/services/cart"
	"cleancare/services/tasks"
)

// Service is the order ledger: commits carts into immutable orders and
// lists order history.
type Service interface {
	// Commit turns the user's active cart into an order. Requires a
	// current delivery address; clears the cart on success.
	Commit(ctx context.Context, userID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo      orderRepo.OrderRepository
	Cart      cart.Service
	Addresses address.Service
	Users     userRepo.UserRepository
	// Reminders is optional; nil disables pickup-reminder scheduling.
	Reminders tasks.Scheduler
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time

	// Guards order-id generation so ids stay strictly increasing even
	// for commits within the same millisecond.
	idMu   sync.Mutex
	lastID int64
}
