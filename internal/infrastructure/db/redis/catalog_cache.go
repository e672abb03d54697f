package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autoyard/inventory-system/internal/api/metrics"
)

const catalogKey = "catalog:vehicles"

// CatalogCache stores the serialized public vehicle list under a single key
// with a short TTL. Mutating callers invalidate the key after a successful
// store write, so a subsequent read observes the new state.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached catalog payload, or (nil, nil) on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return payload, nil
}

// Set stores the catalog payload (expires after the configured TTL).
func (c *CatalogCache) Set(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, catalogKey, payload, c.ttl).Err()
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
