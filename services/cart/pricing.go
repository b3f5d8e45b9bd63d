package cart

import (
	"cleancare/models"
)

// PriceFor computes the total for an item configuration under the service's
// pricing rule. For per-kg services the item counts are an inventory note
// only; the expected weight drives the price.
func PriceFor(svc models.Service, items models.ItemCounts, expectedWeightKg int) float64 {
	switch svc.Pricing.Mode {
	case models.PricingPerKg:
		return float64(expectedWeightKg) * svc.Pricing.RatePerKg
	default:
		total := 0.0
		for item, count := range items {
			total += float64(count) * svc.Pricing.ItemRates[item]
		}
		return total
	}
}

// ItemPrice returns the line total for one item under the service's rate
// table.
func ItemPrice(svc models.Service, item string, count int) float64 {
	return float64(count) * svc.Pricing.ItemRates[item]
}
