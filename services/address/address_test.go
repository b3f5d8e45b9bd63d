package address

import (
	"errors"
	"testing"
	"time"

	addressRepo "cleancare/database/repository/address"
	userRepo "cleancare/database/repository/user"
	"cleancare/models"
)

func newTestService(t *testing.T) (*DefaultService, *userRepo.MemoryUserRepo) {
	t.Helper()
	users := userRepo.NewMemoryUserRepo()
	if err := users.Create(&models.User{ID: "u1", Phone: "9876543210", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &DefaultService{Repo: addressRepo.NewMemoryAddressRepo(), Users: users}, users
}

func TestAddMarksCurrent(t *testing.T) {
	svc, _ := newTestService(t)

	added, err := svc.Add("u1", models.Address{Label: "Home", BuildingName: "Lotus Residency", Line1: "MG Road"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("Add must assign an id")
	}

	current, err := svc.Current("u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current == nil || current.ID != added.ID {
		t.Errorf("current = %v, want the freshly added address", current)
	}
}

func TestAddRequiresLabelAndBuilding(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add("u1", models.Address{BuildingName: "Lotus Residency"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "label" {
		t.Errorf("missing label: got %v", err)
	}

	_, err = svc.Add("u1", models.Address{Label: "Home"})
	if !errors.As(err, &verr) || verr.Field != "buildingName" {
		t.Errorf("missing building name: got %v", err)
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	svc, _ := newTestService(t)

	added, err := svc.Add("u1", models.Address{Label: "Home", BuildingName: "Lotus Residency"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	added.Label = "Work"
	if _, err := svc.Update("u1", *added); err != nil {
		t.Fatalf("Update: %v", err)
	}
	current, _ := svc.Current("u1")
	if current.Label != "Work" {
		t.Errorf("label = %q, want Work", current.Label)
	}

	// Updating an unknown id is an error, not a silent insert.
	_, err = svc.Update("u1", models.Address{ID: "nope", Label: "X", BuildingName: "Y"})
	if !errors.Is(err, addressRepo.ErrNotFound) {
		t.Errorf("Update with unknown id: got %v, want ErrNotFound", err)
	}
}

func TestSelectDoesNotValidateExistence(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Add("u1", models.Address{Label: "Home", BuildingName: "Lotus Residency"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Selecting an id that was never stored is accepted; the pointer just
	// resolves to none.
	if err := svc.Select("u1", "ghost-address"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	current, err := svc.Current("u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current != nil {
		t.Errorf("current = %v, want none for a dangling pointer", current)
	}
}

func TestCurrentNilWhenUnset(t *testing.T) {
	svc, _ := newTestService(t)

	current, err := svc.Current("u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current != nil {
		t.Errorf("current = %v, want nil before any address exists", current)
	}
}
