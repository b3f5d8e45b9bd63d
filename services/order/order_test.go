package order

import (
	"context"
	"errors"
	"testing"
	"time"

	addressRepo "cleancare/database/repository/address"
	orderRepo "cleancare/database/repository/order"
	userRepo "cleancare/database/repository/user"
	"cleancare/models"
	"cleancare/services/address"
	"cleancare/services/cart"
)

func morning() time.Time {
	return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

type recordedReminder struct {
	payload models.PickupReminderPayload
	fireAt  time.Time
}

type fakeScheduler struct {
	scheduled []recordedReminder
}

func (f *fakeScheduler) SchedulePickupReminder(payload models.PickupReminderPayload, fireAt time.Time) error {
	f.scheduled = append(f.scheduled, recordedReminder{payload, fireAt})
	return nil
}

type fixture struct {
	orders    *DefaultService
	carts     cart.Service
	addresses address.Service
	scheduler *fakeScheduler
}

func newFixture(t *testing.T, now func() time.Time) *fixture {
	t.Helper()

	users := userRepo.NewMemoryUserRepo()
	if err := users.Create(&models.User{ID: "u1", Phone: "9876543210"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	carts := &cart.DefaultService{Store: cart.NewMemoryStore(), Now: now}
	addresses := &address.DefaultService{Repo: addressRepo.NewMemoryAddressRepo(), Users: users}
	scheduler := &fakeScheduler{}

	return &fixture{
		orders: &DefaultService{
			Repo:      orderRepo.NewMemoryOrderRepo(),
			Cart:      carts,
			Addresses: addresses,
			Users:     users,
			Reminders: scheduler,
			Now:       now,
		},
		carts:     carts,
		addresses: addresses,
		scheduler: scheduler,
	}
}

func (f *fixture) configureCart(t *testing.T) {
	t.Helper()
	_, err := f.carts.Configure(context.Background(), "u1", cart.ConfigureInput{
		ServiceID: "1",
		Items:     models.ItemCounts{"Shirts": 3, "Pants": 2},
		SlotLabel: "2:00 PM - 4:00 PM",
	})
	if err != nil {
		t.Fatalf("configure cart: %v", err)
	}
}

func (f *fixture) addAddress(t *testing.T) {
	t.Helper()
	if _, err := f.addresses.Add("u1", models.Address{Label: "Home", BuildingName: "Lotus Residency"}); err != nil {
		t.Fatalf("add address: %v", err)
	}
}

func wantCheckoutCode(t *testing.T, err error, code string) {
	t.Helper()
	var cerr *CheckoutError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *CheckoutError", err)
	}
	if cerr.Code != code {
		t.Fatalf("code = %q, want %q", cerr.Code, code)
	}
}

func TestCommitAppendsOrderAndClearsCart(t *testing.T) {
	f := newFixture(t, morning)
	ctx := context.Background()
	f.configureCart(t)
	f.addAddress(t)

	o, err := f.orders.Commit(ctx, "u1")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if o.Status != models.StatusOrdered {
		t.Errorf("status = %q, want %q", o.Status, models.StatusOrdered)
	}
	if o.TotalItems != 5 || o.TotalPrice != 125 {
		t.Errorf("order totals = %d items / %v, want 5 / 125", o.TotalItems, o.TotalPrice)
	}

	// Exactly one order appended.
	list, err := f.orders.ListByUser(ctx, "u1")
	if err != nil || len(list) != 1 || list[0].ID != o.ID {
		t.Fatalf("ListByUser = %v, %v; want the single committed order", list, err)
	}

	// Cart cleared.
	if c, _ := f.carts.Get(ctx, "u1"); c != nil {
		t.Error("cart must be cleared after commit")
	}

	// A second commit has no cart to work with.
	_, err = f.orders.Commit(ctx, "u1")
	wantCheckoutCode(t, err, CodeCartRequired)
}

func TestCommitRequiresCurrentAddress(t *testing.T) {
	f := newFixture(t, morning)
	f.configureCart(t)

	_, err := f.orders.Commit(context.Background(), "u1")
	wantCheckoutCode(t, err, CodeAddressRequired)
}

func TestCommitRejectsExpiredSlot(t *testing.T) {
	f := newFixture(t, morning)
	f.configureCart(t)
	f.addAddress(t)

	// The cart sat idle past the 3:30 PM cutoff of the chosen window.
	later := func() time.Time { return time.Date(2025, 6, 10, 15, 45, 0, 0, time.UTC) }
	f.orders.Now = later

	_, err := f.orders.Commit(context.Background(), "u1")
	wantCheckoutCode(t, err, CodeSlotUnavailable)
}

func TestCommitSchedulesPickupReminder(t *testing.T) {
	f := newFixture(t, morning)
	f.configureCart(t)
	f.addAddress(t)

	if _, err := f.orders.Commit(context.Background(), "u1"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if len(f.scheduler.scheduled) != 1 {
		t.Fatalf("scheduled %d reminders, want 1", len(f.scheduler.scheduled))
	}
	r := f.scheduler.scheduled[0]
	want := time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC) // 30 min before 2 PM
	if !r.fireAt.Equal(want) {
		t.Errorf("fireAt = %v, want %v", r.fireAt, want)
	}
	if r.payload.Phone != "9876543210" || r.payload.SlotLabel != "2:00 PM - 4:00 PM" {
		t.Errorf("payload = %+v", r.payload)
	}
}

func TestOrderIDsAreUniqueAndIncreasing(t *testing.T) {
	f := newFixture(t, morning)
	svc := f.orders

	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 50; i++ {
		id := svc.nextOrderID(morning())
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if prev != "" && len(id) == len(prev) && id <= prev {
			t.Fatalf("ids not increasing: %s then %s", prev, id)
		}
		prev = id
	}
}
