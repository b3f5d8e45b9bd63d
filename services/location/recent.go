package location

import (
	"context"
	"encoding/json"
	"fmt"

	"cleancare/models"

	"github.com/go-redis/redis/v8"
)

// At most this many recent locations are kept per user.
const recentLimit = 5

const recentKeyPrefix = "recentLocations:"

// RecentStore keeps each user's most-recently-used searched places.
type RecentStore interface {
	// Touch records a selection, moving an already-known place to the
	// front instead of duplicating it.
	Touch(ctx context.Context, userID string, loc models.RecentLocation) error
	// List returns the recent places, newest first.
	List(ctx context.Context, userID string) ([]models.RecentLocation, error)
}

// RedisRecentStore persists the lists in Redis so they survive restarts.
type RedisRecentStore struct {
	Client *redis.Client
}

func (s *RedisRecentStore) Touch(ctx context.Context, userID string, loc models.RecentLocation) error {
	existing, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	updated := mergeRecent(existing, loc)

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal recent locations: %w", err)
	}
	if err := s.Client.Set(ctx, recentKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save recent locations: %w", err)
	}
	return nil
}

func (s *RedisRecentStore) List(ctx context.Context, userID string) ([]models.RecentLocation, error) {
	data, err := s.Client.Get(ctx, recentKeyPrefix+userID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load recent locations: %w", err)
	}
	var locs []models.RecentLocation
	if err := json.Unmarshal([]byte(data), &locs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recent locations: %w", err)
	}
	return locs, nil
}

// mergeRecent prepends loc, drops an earlier entry with the same place
// id, and caps the list.
func mergeRecent(existing []models.RecentLocation, loc models.RecentLocation) []models.RecentLocation {
	merged := []models.RecentLocation{loc}
	for _, l := range existing {
		if l.ID == loc.ID {
			continue
		}
		merged = append(merged, l)
	}
	if len(merged) > recentLimit {
		merged = merged[:recentLimit]
	}
	return merged
}
