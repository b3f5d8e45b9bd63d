package catalog

import (
	"cleancare/models"
)

// The fixed service catalog. IDs and pricing mirror the published price card;
// Dry Clean and Steam Iron are listed but not yet bookable.
var services = []models.Service{
	{
		ID:          "1",
		Title:       "Wash Laundry",
		Description: "Complete cleaning solution",
		Icon:        "tshirt-crew",
		Available:   true,
		Items:       []string{"Shirts", "Pants", "Sarees"},
		Pricing: models.PricingRule{
			Mode:      models.PricingPerItem,
			ItemRates: map[string]float64{"Shirts": 25, "Pants": 25, "Sarees": 40},
			MinItems:  5,
		},
	},
	{
		ID:          "2",
		Title:       "Only Wash",
		Description: "Basic washing service",
		Icon:        "washing-machine",
		Available:   true,
		Items:       []string{"Shirts", "Pants", "Sarees", "Towels", "Bedsheets", "Blankets", "Pillow Covers"},
		Pricing: models.PricingRule{
			Mode:        models.PricingPerKg,
			RatePerKg:   69,
			MinItems:    1,
			MinWeightKg: 1,
		},
	},
	{
		ID:          "3",
		Title:       "Laundry",
		Description: "Professional laundry care",
		Icon:        "iron",
		Available:   true,
		Items:       []string{"Shirts", "Pants", "Sarees"},
		Pricing: models.PricingRule{
			Mode:      models.PricingPerItem,
			ItemRates: map[string]float64{"Shirts": 10, "Pants": 10, "Sarees": 30},
			MinItems:  5,
		},
	},
	{
		ID:          "4",
		Title:       "Dry Clean",
		Description: "Professional dry cleaning",
		Icon:        "iron",
		Available:   false,
	},
	{
		ID:          "5",
		Title:       "Steam Iron",
		Description: "prof. steaming service",
		Icon:        "hair-dryer",
		Available:   false,
	},
}

// List returns the full catalog in display order.
func List() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// Get returns the service with the given id.
func Get(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}
