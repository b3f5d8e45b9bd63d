package cart

import (
	"context"
	"fmt"
	"time"

	"cleancare/models"
	"cleancare/services/catalog"
	"cleancare/utils"

	"go.uber.org/zap"
)

// Configure validates and saves the user's active cart.
func (s *DefaultService) Configure(ctx context.Context, userID string, in ConfigureInput) (*models.Cart, error) {
	svc, ok := catalog.Get(in.ServiceID)
	if !ok {
		return nil, newValidationError(CodeUnknownService, fmt.Sprintf("no service with id %s", in.ServiceID))
	}
	if !svc.Available {
		return nil, newValidationError(CodeServiceUnavailable, svc.Title+" is not available yet")
	}

	for item, count := range in.Items {
		if count < 0 {
			return nil, newValidationError(CodeInvalidItems, fmt.Sprintf("negative count for %s", item))
		}
		if !serviceHasItem(svc, item) {
			return nil, newValidationError(CodeInvalidItems, fmt.Sprintf("%s is not offered by %s", item, svc.Title))
		}
	}

	// Replacing a cart that belongs to a different service needs explicit
	// confirmation; old counts never carry over.
	existing, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ServiceID != in.ServiceID && !in.ConfirmReplace {
		return nil, &ValidationError{
			Code:            CodeCartConflict,
			Message:         fmt.Sprintf("you have items from %s; confirm to replace them", existing.ServiceName),
			ConflictService: existing.ServiceName,
		}
	}

	if err := validateQuantities(svc, in); err != nil {
		return nil, err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if in.SlotLabel == "" {
		return nil, newValidationError(CodeNoSlotSelected, "please select a time slot")
	}
	slot, ok := catalog.SlotByLabel(in.SlotLabel)
	if !ok {
		return nil, newValidationError(CodeNoSlotSelected, "unknown time slot "+in.SlotLabel)
	}
	if catalog.IsSlotDisabled(slot, now) {
		verr := newValidationError(CodeSlotUnavailable, in.SlotLabel+" is past its pickup cutoff")
		if fallback, ok := catalog.FirstAvailable(now); ok {
			verr.Fallback = fallback.Label
		}
		return nil, verr
	}

	weight := in.ExpectedWeightKg
	if svc.Pricing.Mode != models.PricingPerKg {
		weight = 0
	}

	c := &models.Cart{
		ServiceID:        svc.ID,
		ServiceName:      svc.Title,
		Items:            in.Items,
		TotalPrice:       PriceFor(svc, in.Items, weight),
		SelectedSlot:     in.SlotLabel,
		ExpectedWeightKg: weight,
		UpdatedAt:        now,
	}
	if c.Items == nil {
		c.Items = models.ItemCounts{}
	}

	if err := s.Store.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("cart configured",
		zap.String("userId", userID),
		zap.String("serviceId", svc.ID),
		zap.Int("totalItems", c.TotalItems()),
		zap.Float64("total", c.TotalPrice),
	)
	return c, nil
}

// Get returns the user's active cart, or nil when none exists.
func (s *DefaultService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return s.Store.Get(ctx, userID)
}

// Clear discards the user's active cart.
func (s *DefaultService) Clear(ctx context.Context, userID string) error {
	return s.Store.Delete(ctx, userID)
}

func validateQuantities(svc models.Service, in ConfigureInput) error {
	totalItems := in.Items.Total()
	if totalItems < svc.Pricing.MinItems {
		return newValidationError(CodeMinimumItemsNotMet,
			fmt.Sprintf("please select at least %d items to proceed", svc.Pricing.MinItems))
	}
	if svc.Pricing.Mode == models.PricingPerKg && in.ExpectedWeightKg < svc.Pricing.MinWeightKg {
		return newValidationError(CodeMinimumItemsNotMet,
			fmt.Sprintf("expected weight must be at least %d kg", svc.Pricing.MinWeightKg))
	}
	return nil
}

func serviceHasItem(svc models.Service, item string) bool {
	for _, it := range svc.Items {
		if it == item {
			return true
		}
	}
	return false
}
