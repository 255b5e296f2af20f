package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"bakery_shop/internal/cart"
	"bakery_shop/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection that holds durable cart slots. Slots are
// written without a TTL: a cart lives until the shopper clears it.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// ForSession returns the durable cart slot for one shopper session.
func (c *Client) ForSession(sessionID string) cart.Storage {
	return &slot{rdb: c.rdb, key: "cart:" + sessionID}
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

type slot struct {
	rdb *redis.Client
	key string
}

func (s *slot) Load() ([]models.CartItem, error) {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart slot: %w", err)
	}

	return items, nil
}

func (s *slot) Save(items []models.CartItem) error {
	ctx := context.Background()
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return s.rdb.Set(ctx, s.key, data, 0).Err()
}
