package catalog

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestIsSlotDisabledCutoff(t *testing.T) {
	// Every slot closes exactly 30 minutes before its end.
	for _, slot := range TimeSlots() {
		cutoffHour := slot.EndHour - 1
		beforeCutoff := at(cutoffHour, 29)
		atCutoff := at(cutoffHour, 30)

		if IsSlotDisabled(slot, beforeCutoff) {
			t.Errorf("slot %q disabled at %v, want enabled", slot.Label, beforeCutoff)
		}
		if !IsSlotDisabled(slot, atCutoff) {
			t.Errorf("slot %q enabled at %v, want disabled", slot.Label, atCutoff)
		}
	}
}

func TestDisabledLabelsProperty(t *testing.T) {
	// Sweep the day in 1-minute steps: a label is reported disabled iff
	// now (in minutes since midnight) >= endHour*60 - 30.
	for minutes := 0; minutes < 24*60; minutes += 17 {
		now := at(minutes/60, minutes%60)
		disabled := map[string]bool{}
		for _, label := range DisabledLabels(now) {
			disabled[label] = true
		}
		for _, slot := range TimeSlots() {
			want := minutes >= slot.EndHour*60-30
			if disabled[slot.Label] != want {
				t.Fatalf("at %02d:%02d slot %q disabled=%v, want %v",
					minutes/60, minutes%60, slot.Label, disabled[slot.Label], want)
			}
		}
	}
}

func TestFirstAvailable(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantLabel string
		wantOK    bool
	}{
		{"early morning", at(6, 0), "8:00 AM - 10:00 AM", true},
		{"first slot closing", at(9, 30), "10:00 AM - 12:00 PM", true},
		{"mid afternoon", at(14, 0), "2:00 PM - 4:00 PM", true},
		{"afternoon cutoff", at(15, 30), "4:00 PM - 6:00 PM", true},
		{"after last cutoff", at(19, 30), "", false},
		{"late night", at(23, 0), "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot, ok := FirstAvailable(tc.now)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && slot.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", slot.Label, tc.wantLabel)
			}
		})
	}
}

func TestAvailabilitySnapshot(t *testing.T) {
	snap := Availability(at(13, 45))
	if len(snap.Slots) != 6 {
		t.Fatalf("snapshot has %d slots, want 6", len(snap.Slots))
	}
	// 13:45 is past the 13:30 cutoff of the 12-2 window.
	if !snap.Slots[2].Disabled {
		t.Error("12:00 PM - 2:00 PM should be disabled at 13:45")
	}
	if snap.FirstAvailable != "2:00 PM - 4:00 PM" {
		t.Errorf("first available = %q, want 2:00 PM - 4:00 PM", snap.FirstAvailable)
	}
}

func TestSlotByLabel(t *testing.T) {
	if _, ok := SlotByLabel("8:00 AM - 10:00 AM"); !ok {
		t.Error("known label not found")
	}
	if _, ok := SlotByLabel("9:00 PM - 11:00 PM"); ok {
		t.Error("unknown label reported found")
	}
}
