package models

import "time"

// Order statuses. Orders are created as StatusOrdered; later transitions are
// handled by the operations side, not this service.
const (
	StatusOrdered    = "ordered"
	StatusPickedUp   = "picked_up"
	StatusInProgress = "in_progress"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order is an immutable record created at checkout confirmation.
type Order struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	ServiceName  string    `bson:"serviceName" json:"serviceName"`
	TotalItems   int       `bson:"totalItems" json:"totalItems"`
	TotalPrice   float64   `bson:"totalPrice" json:"totalPrice"`
	PlacedAt     time.Time `bson:"placedAt" json:"placedAt"`
	SelectedSlot string    `bson:"selectedSlot" json:"selectedSlot"`
	Status       string    `bson:"status" json:"status"`
}
