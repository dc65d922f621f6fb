package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/models"
)

// CartStore persists a cart wholesale under a single key, mirroring the
// client-local storage contract: the stored value is the JSON-serialized
// array of line entries, rewritten completely on every mutation.
type CartStore interface {
	Load(ctx context.Context, cartID string) (models.Cart, error)
	Save(ctx context.Context, cartID string, cart models.Cart) error
}

// NewCartStore picks the Redis-backed store when Redis is connected and
// falls back to the in-memory store otherwise.
func NewCartStore() CartStore {
	if config.RedisClient != nil {
		return NewRedisCartStore(config.RedisClient, config.AppConfig.CartKeyPrefix)
	}
	return NewMemoryCartStore()
}

type RedisCartStore struct {
	client *redis.Client
	prefix string
}

func NewRedisCartStore(client *redis.Client, prefix string) *RedisCartStore {
	return &RedisCartStore{client: client, prefix: prefix}
}

func (s *RedisCartStore) key(cartID string) string {
	return s.prefix + cartID
}

func (s *RedisCartStore) Load(ctx context.Context, cartID string) (models.Cart, error) {
	raw, err := s.client.Get(ctx, s.key(cartID)).Result()
	if err == redis.Nil {
		return models.Cart{}, nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("failed to load cart %q: %w", cartID, err)
	}

	var items []models.CartLineEntry
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return models.Cart{}, fmt.Errorf("corrupt cart %q: %w", cartID, err)
	}
	return models.Cart{Items: items}, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cartID string, cart models.Cart) error {
	items := cart.Items
	if items == nil {
		items = []models.CartLineEntry{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart %q: %w", cartID, err)
	}
	if err := s.client.Set(ctx, s.key(cartID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart %q: %w", cartID, err)
	}
	return nil
}

// MemoryCartStore keeps the same serialized-array contract as the Redis
// store so a round-trip through either yields identical carts.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string][]byte{}}
}

func (s *MemoryCartStore) Load(ctx context.Context, cartID string) (models.Cart, error) {
	s.mu.RLock()
	raw, ok := s.carts[cartID]
	s.mu.RUnlock()
	if !ok {
		return models.Cart{}, nil
	}

	var items []models.CartLineEntry
	if err := json.Unmarshal(raw, &items); err != nil {
		return models.Cart{}, fmt.Errorf("corrupt cart %q: %w", cartID, err)
	}
	return models.Cart{Items: items}, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cartID string, cart models.Cart) error {
	items := cart.Items
	if items == nil {
		items = []models.CartLineEntry{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart %q: %w", cartID, err)
	}
	s.mu.Lock()
	s.carts[cartID] = raw
	s.mu.Unlock()
	return nil
}
