package models

import "time"

// Coordinates is an optional lat/lng pair attached to an address.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Address is a stored delivery address. Several may exist per user; one is
// designated current by id reference.
type Address struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"-"`
	Label        string       `bson:"label" json:"label"` // e.g., "Home", "Work"
	Line1        string       `bson:"line1" json:"line1"`
	City         string       `bson:"city" json:"city"`
	State        string       `bson:"state" json:"state"`
	Zip          string       `bson:"zip" json:"zip"`
	Phone        string       `bson:"phone" json:"phone"`
	BuildingName string       `bson:"buildingName" json:"buildingName"`
	FlatNumber   string       `bson:"flatNumber,omitempty" json:"flatNumber,omitempty"`
	Notes        string       `bson:"notes,omitempty" json:"notes,omitempty"`
	Coords       *Coordinates `bson:"coords,omitempty" json:"coords,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}
