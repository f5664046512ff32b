package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin read-through cache over Redis. A Cache with a nil
// client is valid and degrades to a no-op, so the service keeps working
// when Redis is unreachable.
type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

// New connects to Redis at addr. Connection failure is logged and
// tolerated: the returned cache is a no-op in that case.
func New(addr string, log *zap.Logger) *Cache {
	if addr == "" {
		return &Cache{log: log}
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, continuing without cache", zap.Error(err))
		return &Cache{log: log}
	}
	return &Cache{client: client, log: log}
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client, log *zap.Logger) *Cache {
	return &Cache{client: client, log: log}
}

// GetJSON loads key into dest. Returns (false, nil) on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v under key with a TTL. Best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Invalidate removes the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
