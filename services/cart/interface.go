package cart

import (
	"context"
	"time"

	"cleancare/models"
)

// ConfigureInput is one attempt to configure the active cart.
type ConfigureInput struct {
	ServiceID        string            `json:"serviceId" binding:"required"`
	Items            models.ItemCounts `json:"items"`
	SlotLabel        string            `json:"selectedSlot"`
	ExpectedWeightKg int               `json:"expectedKgs"`
	// ConfirmReplace acknowledges discarding an active cart that belongs
	// to a different service.
	ConfirmReplace bool `json:"confirmReplace"`
}

// Service aggregates item counts into the user's single active cart.
type Service interface {
	// Configure validates the input against the service's rules and slot
	// availability and saves the resulting cart. Rejections are returned
	// as *ValidationError.
	Configure(ctx context.Context, userID string, in ConfigureInput) (*models.Cart, error)
	// Get returns nil, nil when no cart is active.
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Store Store
	// Now overrides the clock used for slot-cutoff checks; nil means
	// time.Now.
	Now func() time.Time
}
