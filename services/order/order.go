package order

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cleancare/models"
	"cleancare/services/catalog"
	"cleancare/utils"

	"go.uber.org/zap"
)

// Pickup reminders fire this long before the slot opens.
const reminderLead = 30 * time.Minute

// Commit turns the user's active cart into an immutable order.
func (s *DefaultService) Commit(ctx context.Context, userID string) (*models.Order, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	c, err := s.Cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newCheckoutError(CodeCartRequired, "no active cart to check out")
	}

	// Checkout gating: a current delivery address must resolve.
	addr, err := s.Addresses.Current(userID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, newCheckoutError(CodeAddressRequired, "add an address to continue")
	}

	// The slot may have crossed its cutoff while the cart sat idle.
	slot, ok := catalog.SlotByLabel(c.SelectedSlot)
	if !ok || catalog.IsSlotDisabled(slot, now) {
		return nil, newCheckoutError(CodeSlotUnavailable, c.SelectedSlot+" is no longer available; pick a new slot")
	}

	o := &models.Order{
		ID:           s.nextOrderID(now),
		UserID:       userID,
		ServiceName:  c.ServiceName,
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice,
		PlacedAt:     now,
		SelectedSlot: c.SelectedSlot,
		Status:       models.StatusOrdered,
	}
	if err := s.Repo.Insert(o); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.Cart.Clear(ctx, userID); err != nil {
		utils.GetLogger().Error("order recorded but cart not cleared",
			zap.String("userId", userID), zap.Error(err))
	}

	s.schedulePickupReminder(o, slot, now)

	utils.GetLogger().Info("order placed",
		zap.String("orderId", o.ID),
		zap.String("userId", userID),
		zap.String("service", o.ServiceName),
		zap.Float64("total", o.TotalPrice),
	)
	return o, nil
}

// ListByUser returns the user's orders in placement order.
func (s *DefaultService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// nextOrderID derives a unique id from the commit timestamp, strictly
// increasing across calls.
func (s *DefaultService) nextOrderID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *DefaultService) schedulePickupReminder(o *models.Order, slot models.TimeSlot, now time.Time) {
	if s.Reminders == nil {
		return
	}

	slotOpen := time.Date(now.Year(), now.Month(), now.Day(), slot.StartHour, 0, 0, 0, now.Location())
	fireAt := slotOpen.Add(-reminderLead)
	if !fireAt.After(now) {
		// Order placed inside the lead window; nothing to remind.
		return
	}

	phone := ""
	if user, err := s.Users.GetByID(o.UserID); err == nil {
		phone = user.Phone
	}
	payload := models.PickupReminderPayload{
		OrderID:     o.ID,
		UserID:      o.UserID,
		Phone:       phone,
		ServiceName: o.ServiceName,
		SlotLabel:   o.SelectedSlot,
	}
	if err := s.Reminders.SchedulePickupReminder(payload, fireAt); err != nil {
		utils.GetLogger().Error("failed to schedule pickup reminder",
			zap.String("orderId", o.ID), zap.Error(err))
	}
}
