package catalog

import (
	"sync"
	"time"

	"cleancare/models"
	"cleancare/utils"
)

// AvailabilityTicker keeps a cached slot-availability snapshot that is
// recomputed on a fixed interval. Handlers read the snapshot instead of
// recomputing the table on every request. Stop must be called when the
// owner shuts down so the goroutine does not leak.
type AvailabilityTicker struct {
	mu       sync.RWMutex
	snapshot models.SlotAvailability

	interval time.Duration
	now      func() time.Time
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewAvailabilityTicker computes an initial snapshot and starts the
// refresh loop.
func NewAvailabilityTicker(interval time.Duration) *AvailabilityTicker {
	t := &AvailabilityTicker{
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	t.refresh()
	go t.run()
	return t
}

func (t *AvailabilityTicker) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			t.refresh()
		case <-t.stopCh:
			return
		}
	}
}

func (t *AvailabilityTicker) refresh() {
	snap := Availability(t.now())
	t.mu.Lock()
	t.snapshot = snap
	t.mu.Unlock()
}

// Snapshot returns the cached availability. If the cache is older than the
// refresh interval (e.g., the process was suspended), it is recomputed so
// correctness never depends on the tick alone.
func (t *AvailabilityTicker) Snapshot() models.SlotAvailability {
	t.mu.RLock()
	snap := t.snapshot
	t.mu.RUnlock()

	if t.now().Unix()-snap.ComputedAt > int64(t.interval/time.Second) {
		t.refresh()
		t.mu.RLock()
		snap = t.snapshot
		t.mu.RUnlock()
	}
	return snap
}

// Stop terminates the refresh loop. Safe to call more than once.
func (t *AvailabilityTicker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
		utils.GetLogger().Sugar().Debug("catalog: availability ticker stopped")
	})
}
