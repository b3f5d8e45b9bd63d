package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleancare/models"

	"github.com/go-redis/redis/v8"
)

const cartSessionPrefix = "cartSession:"

// A cart that sees no activity for this long is dropped.
const cartSessionTTL = 24 * time.Hour

// Store holds the single active cart per user.
type Store interface {
	// Get returns nil, nil when the user has no active cart.
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, userID string, c *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// RedisStore keeps cart sessions as JSON documents in the cache DB.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartSessionPrefix+userID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart session: %w", err)
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}
	if err := s.Client.Set(ctx, cartSessionPrefix+userID, data, cartSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.Client.Del(ctx, cartSessionPrefix+userID).Err()
}
