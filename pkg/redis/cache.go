package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON values. A Cache built on a nil client is a permanent miss,
// so callers never branch on Redis availability.
type Cache struct {
	client *redis.Client
	log    *slog.Logger

	warnedUnavailable atomic.Bool
}

func NewCache(client *redis.Client, log *slog.Logger) *Cache {
	return &Cache{client: client, log: log}
}

func (c *Cache) unavailable() bool {
	return c == nil || c.client == nil
}

func (c *Cache) warnOnce(err error) {
	if c.log == nil || err == nil {
		return
	}
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		c.log.Warn("Redis cache unavailable, bypassing", "error", err)
	}
}

func (c *Cache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if c.unavailable() {
		return false, nil
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		c.warnOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.unavailable() || ttl <= 0 {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		c.warnOnce(err)
		return err
	}
	return nil
}

// DeleteByPattern removes every key matching a SCAN glob.
func (c *Cache) DeleteByPattern(ctx context.Context, pattern string) error {
	if c.unavailable() || pattern == "" {
		return nil
	}
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var firstErr error
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := iter.Err(); err != nil {
		c.warnOnce(err)
		return err
	}
	return firstErr
}
