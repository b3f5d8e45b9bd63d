package address

import (
	"fmt"
	"strings"

	"cleancare/models"
	"cleancare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Add validates, stores, and marks the new address as current.
func (s *DefaultService) Add(userID string, addr models.Address) (*models.Address, error) {
	if err := validate(addr); err != nil {
		return nil, err
	}

	addr.ID = uuid.New().String()
	addr.UserID = userID
	if err := s.Repo.Insert(&addr); err != nil {
		return nil, err
	}
	if err := s.Users.SetCurrentAddressID(userID, addr.ID); err != nil {
		return nil, fmt.Errorf("address saved but could not be marked current: %w", err)
	}

	utils.GetLogger().Info("address added",
		zap.String("userId", userID),
		zap.String("addressId", addr.ID),
		zap.String("label", addr.Label),
	)
	return &addr, nil
}

// Update replaces the stored address matching addr.ID.
func (s *DefaultService) Update(userID string, addr models.Address) (*models.Address, error) {
	if err := validate(addr); err != nil {
		return nil, err
	}

	addr.UserID = userID
	if err := s.Repo.Update(&addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Select sets the current-address pointer. Existence is deliberately not
// checked: a stale id resolves to no current address and checkout stays
// gated until a valid one is chosen.
func (s *DefaultService) Select(userID, addressID string) error {
	return s.Users.SetCurrentAddressID(userID, addressID)
}

// Current resolves the current pointer to an address, or nil.
func (s *DefaultService) Current(userID string) (*models.Address, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.CurrentAddressID == "" {
		return nil, nil
	}
	return s.Repo.GetByID(userID, user.CurrentAddressID)
}

// List returns the user's stored addresses in creation order.
func (s *DefaultService) List(userID string) ([]models.Address, error) {
	return s.Repo.ListByUser(userID)
}

// The save form requires a label and a building name; everything else is
// optional.
func validate(addr models.Address) error {
	if strings.TrimSpace(addr.Label) == "" {
		return &ValidationError{Field: "label", Message: "label is required"}
	}
	if strings.TrimSpace(addr.BuildingName) == "" {
		return &ValidationError{Field: "buildingName", Message: "building name is required"}
	}
	return nil
}
