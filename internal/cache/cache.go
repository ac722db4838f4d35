// Package cache provides a small redis-backed JSON cache for analysis and
// simulation responses. When no redis address is configured every operation
// is a no-op, so callers never branch on cache availability.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "analysis"
	defaultTTL = time.Hour
)

// Cache wraps a redis client with JSON encode/decode and a fixed TTL
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New opens a redis client. An empty addr returns a disabled cache.
func New(addr, pass string, db int) *Cache {
	if addr == "" {
		return &Cache{ttl: defaultTTL}
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
	return &Cache{client: client, ttl: defaultTTL}
}

// Key builds a cache key like "analysis:priority_scores_<regency>"
func Key(operation, regencyID string) string {
	return keyPrefix + ":" + operation + "_" + regencyID
}

// Get unmarshals the cached value into dest, reporting whether it was found
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// Set stores the value under key for the cache TTL. Failures are logged and
// swallowed; the cache is an optimization, not a dependency.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Close releases the underlying client
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
