package models

import "time"

// ItemCounts maps item name to a non-negative count.
type ItemCounts map[string]int

// Total sums all item counts.
func (ic ItemCounts) Total() int {
	total := 0
	for _, n := range ic {
		total += n
	}
	return total
}

// Decrement lowers the count for item by one; a no-op at zero.
func (ic ItemCounts) Decrement(item string) {
	if ic[item] > 0 {
		ic[item]--
	}
}

// Increment raises the count for item by one.
func (ic ItemCounts) Increment(item string) {
	ic[item]++
}

// Cart is the single in-progress service configuration for a user.
// At most one cart is active per user at a time.
type Cart struct {
	ServiceID        string     `json:"serviceId"`
	ServiceName      string     `json:"serviceName"`
	Items            ItemCounts `json:"items"`
	TotalPrice       float64    `json:"total"`
	SelectedSlot     string     `json:"selectedSlot"`
	ExpectedWeightKg int        `json:"expectedKgs,omitempty"` // weight-priced services only
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// TotalItems returns the summed item count across the cart.
func (c *Cart) TotalItems() int {
	return c.Items.Total()
}
