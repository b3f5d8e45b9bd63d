package catalog

import (
	"testing"
	"time"
)

func TestTickerSnapshotRecomputesWhenStale(t *testing.T) {
	ticker := NewAvailabilityTicker(time.Hour)
	defer ticker.Stop()

	// Pretend the clock jumped far past the cached snapshot.
	ticker.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	before := ticker.Snapshot().ComputedAt

	ticker.now = func() time.Time { return time.Now().Add(4 * time.Hour) }
	after := ticker.Snapshot().ComputedAt

	if after <= before {
		t.Errorf("stale snapshot was not recomputed: before=%d after=%d", before, after)
	}
}

func TestTickerStopIsIdempotent(t *testing.T) {
	ticker := NewAvailabilityTicker(time.Minute)
	ticker.Stop()
	ticker.Stop() // must not panic

	// Snapshot still serves after Stop.
	if len(ticker.Snapshot().Slots) != 6 {
		t.Error("snapshot unavailable after Stop")
	}
}
