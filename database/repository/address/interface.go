package addressRepo

import (
	"errors"

	"cleancare/models"
)

// ErrNotFound is reported by Update when no stored address matches.
// Callers test for it with errors.Is.
var ErrNotFound = errors.New("address not found")

// AddressRepository is the persistence contract for delivery addresses.
type AddressRepository interface {
	Insert(addr *models.Address) error
	// Update replaces the address matching addr.ID for addr.UserID;
	// ErrNotFound when no match exists.
	Update(addr *models.Address) error
	GetByID(userID, id string) (*models.Address, error)
	ListByUser(userID string) ([]models.Address, error)
}
