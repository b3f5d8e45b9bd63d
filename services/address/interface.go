package address

import (
	addressRepo "cleancare/database/repository/address"
	userRepo "cleancare/database/repository/user"
	"cleancare/models"
)

// Service is the address book: several stored addresses per user, one of
// which may be designated current by id reference.
type Service interface {
	// Add stores a new address and marks it current.
	Add(userID string, addr models.Address) (*models.Address, error)
	// Update replaces the stored address matching addr.ID.
	Update(userID string, addr models.Address) (*models.Address, error)
	// Select sets the current pointer. The id is not validated against
	// the stored collection; selecting an absent id leaves Current
	// resolving to none.
	Select(userID, addressID string) error
	// Current resolves the current pointer; nil when unset or dangling.
	Current(userID string) (*models.Address, error)
	List(userID string) ([]models.Address, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo  addressRepo.AddressRepository
	Users userRepo.UserRepository
}
