package models

// Pricing modes supported by the catalog.
const (
	PricingPerItem = "per_item"
	PricingPerKg   = "per_kg"
)

// PricingRule describes how a service charges.
type PricingRule struct {
	Mode        string             `json:"mode"`                  // "per_item" or "per_kg"
	ItemRates   map[string]float64 `json:"itemRates,omitempty"`   // per-item mode
	RatePerKg   float64            `json:"ratePerKg,omitempty"`   // per-kg mode
	MinItems    int                `json:"minItems"`              // minimum total item count
	MinWeightKg int                `json:"minWeightKg,omitempty"` // per-kg mode only
}

// Service is one catalog entry.
type Service struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Available   bool        `json:"available"`
	Items       []string    `json:"items,omitempty"` // display order for the item list
	Pricing     PricingRule `json:"pricing"`
}
