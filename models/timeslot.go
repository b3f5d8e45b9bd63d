package models

// TimeSlot represents a fixed daily pickup window.
type TimeSlot struct {
	Label     string `bson:"label" json:"label"`           // e.g., "8:00 AM - 10:00 AM"
	StartHour int    `bson:"startHour" json:"startHour"`   // hour of day, 24h clock
	EndHour   int    `bson:"endHour" json:"endHour"`       // hour of day, 24h clock
}

// SlotStatus is the availability view of one slot at a given instant.
type SlotStatus struct {
	TimeSlot
	Disabled bool `json:"disabled"`
}

// SlotAvailability is a snapshot of the whole slot table.
type SlotAvailability struct {
	ComputedAt int64        `json:"computedAt"` // unix seconds
	Slots      []SlotStatus `json:"slots"`
	// First still-open slot label in table order; empty when none remain.
	FirstAvailable string `json:"firstAvailable,omitempty"`
}
