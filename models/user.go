package models

import "time"

// User is a phone-verified account.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Phone            string    `bson:"phone" json:"phone"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	CurrentAddressID string    `bson:"currentAddressId,omitempty" json:"currentAddressId,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
