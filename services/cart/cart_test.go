package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleancare/models"
)

// 9:00 AM: every slot is still open.
func morning() time.Time {
	return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func newTestService(now func() time.Time) *DefaultService {
	return &DefaultService{Store: NewMemoryStore(), Now: now}
}

func wantValidationCode(t *testing.T, err error, code string) *ValidationError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Code != code {
		t.Fatalf("code = %q, want %q", verr.Code, code)
	}
	return verr
}

func TestConfigureMinimumItems(t *testing.T) {
	svc := newTestService(morning)
	ctx := context.Background()

	_, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 2, "Pants": 2},
		SlotLabel: "10:00 AM - 12:00 PM",
	})
	wantValidationCode(t, err, CodeMinimumItemsNotMet)

	// Exactly at the minimum succeeds.
	c, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 3, "Pants": 2},
		SlotLabel: "10:00 AM - 12:00 PM",
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if c.TotalItems() != 5 || c.TotalPrice != 125 {
		t.Errorf("got %d items, total %v; want 5 items, total 125", c.TotalItems(), c.TotalPrice)
	}
}

func TestConfigureNoSlotSelected(t *testing.T) {
	svc := newTestService(morning)

	_, err := svc.Configure(context.Background(), "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 5},
	})
	wantValidationCode(t, err, CodeNoSlotSelected)
}

func TestConfigureSlotPastCutoffSuggestsFallback(t *testing.T) {
	// 9:45 AM is past the 9:30 cutoff of the first window.
	svc := newTestService(func() time.Time {
		return time.Date(2025, 6, 10, 9, 45, 0, 0, time.UTC)
	})

	_, err := svc.Configure(context.Background(), "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 5},
		SlotLabel: "8:00 AM - 10:00 AM",
	})
	verr := wantValidationCode(t, err, CodeSlotUnavailable)
	if verr.Fallback != "10:00 AM - 12:00 PM" {
		t.Errorf("fallback = %q, want the first open slot", verr.Fallback)
	}
}

func TestConfigureNoSlotsLeft(t *testing.T) {
	// 7:45 PM: all six windows are past their cutoff; no fallback exists.
	svc := newTestService(func() time.Time {
		return time.Date(2025, 6, 10, 19, 45, 0, 0, time.UTC)
	})

	_, err := svc.Configure(context.Background(), "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 5},
		SlotLabel: "6:00 PM - 8:00 PM",
	})
	verr := wantValidationCode(t, err, CodeSlotUnavailable)
	if verr.Fallback != "" {
		t.Errorf("fallback = %q, want empty when nothing is open", verr.Fallback)
	}
}

func TestConfigureServiceSwitchNeedsConfirmation(t *testing.T) {
	svc := newTestService(morning)
	ctx := context.Background()

	if _, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 5},
		SlotLabel: "10:00 AM - 12:00 PM",
	}); err != nil {
		t.Fatalf("initial Configure: %v", err)
	}

	// Switching to Laundry without confirmation is rejected and the old
	// cart is kept.
	_, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "3",
		Items:     models.ItemCounts{"Sarees": 5},
		SlotLabel: "10:00 AM - 12:00 PM",
	})
	verr := wantValidationCode(t, err, CodeCartConflict)
	if verr.ConflictService != "Wash Laundry" {
		t.Errorf("conflict service = %q, want Wash Laundry", verr.ConflictService)
	}
	kept, _ := svc.Get(ctx, "u1")
	if kept == nil || kept.ServiceID != "1" {
		t.Fatal("unconfirmed switch must not discard the active cart")
	}

	// Confirming replaces the cart with fresh counts for the new service.
	c, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID:      "3",
		Items:          models.ItemCounts{"Sarees": 5},
		SlotLabel:      "10:00 AM - 12:00 PM",
		ConfirmReplace: true,
	})
	if err != nil {
		t.Fatalf("confirmed Configure: %v", err)
	}
	if c.ServiceID != "3" || c.Items["Shirts"] != 0 || c.TotalPrice != 150 {
		t.Errorf("replaced cart = %+v; old counts must not carry over", c)
	}
}

func TestConfigureWeightBasedService(t *testing.T) {
	svc := newTestService(morning)
	ctx := context.Background()

	// Weight below the 1 kg floor is rejected.
	_, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID:        "2",
		Items:            models.ItemCounts{"Towels": 2},
		SlotLabel:        "10:00 AM - 12:00 PM",
		ExpectedWeightKg: 0,
	})
	wantValidationCode(t, err, CodeMinimumItemsNotMet)

	c, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID:        "2",
		Items:            models.ItemCounts{"Towels": 2},
		SlotLabel:        "10:00 AM - 12:00 PM",
		ExpectedWeightKg: 3,
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if c.TotalPrice != 207 {
		t.Errorf("3 kg total = %v, want 207", c.TotalPrice)
	}
	if c.Items["Towels"] != 2 {
		t.Error("item counts must be kept as an inventory note")
	}
}

func TestConfigureUnavailableService(t *testing.T) {
	svc := newTestService(morning)

	for _, id := range []string{"4", "5"} {
		_, err := svc.Configure(context.Background(), "u1", ConfigureInput{
			ServiceID: id,
			SlotLabel: "10:00 AM - 12:00 PM",
		})
		wantValidationCode(t, err, CodeServiceUnavailable)
	}
}

func TestConfigureRejectsNegativeAndForeignItems(t *testing.T) {
	svc := newTestService(morning)
	ctx := context.Background()

	_, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": -1},
		SlotLabel: "10:00 AM - 12:00 PM",
	})
	wantValidationCode(t, err, CodeInvalidItems)

	_, err = svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Blankets": 5},
		SlotLabel: "10:00 AM - 12:00 PM",
	})
	wantValidationCode(t, err, CodeInvalidItems)
}

func TestClearRemovesCart(t *testing.T) {
	svc := newTestService(morning)
	ctx := context.Background()

	if _, err := svc.Configure(ctx, "u1", ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 5},
		SlotLabel: "10:00 AM - 12:00 PM",
	}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := svc.Clear(ctx, "u1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	c, err := svc.Get(ctx, "u1")
	if err != nil || c != nil {
		t.Errorf("after Clear: cart=%v err=%v, want nil, nil", c, err)
	}
}
