package catalog

import (
	"time"

	"cleancare/models"
)

// A slot closes for booking this long before its end.
const slotCutoff = 30 * time.Minute

// The fixed daily pickup windows.
var timeSlots = []models.TimeSlot{
	{Label: "8:00 AM - 10:00 AM", StartHour: 8, EndHour: 10},
	{Label: "10:00 AM - 12:00 PM", StartHour: 10, EndHour: 12},
	{Label: "12:00 PM - 2:00 PM", StartHour: 12, EndHour: 14},
	{Label: "2:00 PM - 4:00 PM", StartHour: 14, EndHour: 16},
	{Label: "4:00 PM - 6:00 PM", StartHour: 16, EndHour: 18},
	{Label: "6:00 PM - 8:00 PM", StartHour: 18, EndHour: 20},
}

// TimeSlots returns the fixed slot table in order.
func TimeSlots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsSlotDisabled reports whether the slot is past its booking cutoff at now.
func IsSlotDisabled(slot models.TimeSlot, now time.Time) bool {
	currentMinutes := now.Hour()*60 + now.Minute()
	return currentMinutes >= slot.EndHour*60-int(slotCutoff.Minutes())
}

// DisabledLabels returns the labels of all slots past their cutoff at now.
func DisabledLabels(now time.Time) []string {
	var disabled []string
	for _, slot := range timeSlots {
		if IsSlotDisabled(slot, now) {
			disabled = append(disabled, slot.Label)
		}
	}
	return disabled
}

// FirstAvailable returns the first still-open slot in table order.
func FirstAvailable(now time.Time) (models.TimeSlot, bool) {
	for _, slot := range timeSlots {
		if !IsSlotDisabled(slot, now) {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

// SlotByLabel looks up a slot from the fixed table.
func SlotByLabel(label string) (models.TimeSlot, bool) {
	for _, slot := range timeSlots {
		if slot.Label == label {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

// Availability computes the full availability snapshot for now.
func Availability(now time.Time) models.SlotAvailability {
	snap := models.SlotAvailability{
		ComputedAt: now.Unix(),
		Slots:      make([]models.SlotStatus, 0, len(timeSlots)),
	}
	for _, slot := range timeSlots {
		disabled := IsSlotDisabled(slot, now)
		if !disabled && snap.FirstAvailable == "" {
			snap.FirstAvailable = slot.Label
		}
		snap.Slots = append(snap.Slots, models.SlotStatus{TimeSlot: slot, Disabled: disabled})
	}
	return snap
}
