package userRepo

import "cleancare/models"

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByPhone returns nil, nil when no account exists for the phone.
	GetByPhone(phone string) (*models.User, error)
	Update(user *models.User) error
	// SetCurrentAddressID records which stored address is the active
	// delivery target. The id is not validated against the address
	// collection; a stale pointer simply resolves to no current address.
	SetCurrentAddressID(userID, addressID string) error
}
