// Package cache provides a Redis-backed cache for live upstream
// payloads. All operations are nil-safe so callers can run without
// Redis configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache wraps a Redis client with JSON marshaling and a default TTL
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a cache backed by the given Redis client. A nil client
// yields a cache whose operations are no-ops.
func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get reads a cached value into out and reports whether it was found
func (c *Cache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Cache entry corrupt, discarding", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// Set stores a value under the default TTL. Failures are logged, not
// returned, since the cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes cached entries for the given keys
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.Error(err))
	}
}

// PageKey builds the cache key for a page view scoped to a region
func PageKey(page, region string) string {
	if region == "" {
		region = "global"
	}
	return fmt.Sprintf("canvas:page:%s:%s", page, region)
}
