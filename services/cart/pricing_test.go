package cart

import (
	"testing"

	"cleancare/models"
	"cleancare/services/catalog"
)

func mustService(t *testing.T, id string) models.Service {
	t.Helper()
	svc, ok := catalog.Get(id)
	if !ok {
		t.Fatalf("service %s not in catalog", id)
	}
	return svc
}

func TestPerItemPricing(t *testing.T) {
	tests := []struct {
		name      string
		serviceID string
		items     models.ItemCounts
		want      float64
	}{
		{"wash laundry shirts and pants", "1", models.ItemCounts{"Shirts": 3, "Pants": 2}, 125},
		{"wash laundry sarees premium", "1", models.ItemCounts{"Shirts": 2, "Sarees": 3}, 170},
		{"laundry discounted tier", "3", models.ItemCounts{"Shirts": 3, "Pants": 2}, 50},
		{"laundry sarees", "3", models.ItemCounts{"Sarees": 5}, 150},
		{"empty cart", "1", models.ItemCounts{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mustService(t, tc.serviceID)
			if got := PriceFor(svc, tc.items, 0); got != tc.want {
				t.Errorf("PriceFor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWeightBasedPricingIgnoresItemCounts(t *testing.T) {
	svc := mustService(t, "2")

	withItems := PriceFor(svc, models.ItemCounts{"Shirts": 10, "Towels": 4}, 3)
	withoutItems := PriceFor(svc, models.ItemCounts{}, 3)

	if withItems != 207 || withoutItems != 207 {
		t.Errorf("3 kg at 69/kg: got %v and %v, want 207 for both", withItems, withoutItems)
	}
}

func TestItemPrice(t *testing.T) {
	svc := mustService(t, "1")
	if got := ItemPrice(svc, "Sarees", 2); got != 80 {
		t.Errorf("ItemPrice(Sarees, 2) = %v, want 80", got)
	}
}
