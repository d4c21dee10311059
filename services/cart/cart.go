// Package cart is the redis-backed apparel cart. Each browser session
// owns one cart, keyed by session id; the store is constructed at
// composition time and injected, never reached through a global.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"wavecrest/models"
)

// Store manages per-session cart contents.
type Store interface {
	AddItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartItem, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	Items(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore implements Store over one redis hash per session.
type RedisStore struct {
	Cache *redis.Client
	TTL   time.Duration
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(cache *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Cache: cache, TTL: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// AddItem appends a line to the cart and refreshes its TTL. Assigns the
// item id.
func (s *RedisStore) AddItem(ctx context.Context, sessionID string, item models.CartItem) (models.CartItem, error) {
	if item.Quantity <= 0 {
		return models.CartItem{}, fmt.Errorf("cart item quantity must be positive")
	}
	item.ItemID = uuid.New().String()

	data, err := json.Marshal(item)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("failed to marshal cart item: %w", err)
	}

	key := cartKey(sessionID)
	pipe := s.Cache.TxPipeline()
	pipe.HSet(ctx, key, item.ItemID, data)
	pipe.Expire(ctx, key, s.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return models.CartItem{}, fmt.Errorf("failed to store cart item: %w", err)
	}
	return item, nil
}

// RemoveItem deletes a line from the cart.
func (s *RedisStore) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	removed, err := s.Cache.HDel(ctx, cartKey(sessionID), itemID).Result()
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("cart item not found")
	}
	return nil
}

// Items returns all lines in the cart.
func (s *RedisStore) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	raw, err := s.Cache.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	items := make([]models.CartItem, 0, len(raw))
	for _, data := range raw {
		var item models.CartItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, fmt.Errorf("failed to parse cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear empties the cart.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
