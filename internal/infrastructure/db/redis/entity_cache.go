package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/websap/websap-api/internal/core/ports"
)

const defaultCacheTTL = 24 * time.Hour

// EntityCache is the local persistent cache backed by Redis: one hash
// per entity namespace, keyed by record id. Namespaces materialize on
// first write, so initialization is implicit and idempotent. The TTL
// is refreshed on every put; entries for an entity type expire
// together.
// Key format: cache:<store>
type EntityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEntityCache wraps the given Redis client. A non-positive ttl
// falls back to the default.
func NewEntityCache(client *redis.Client, ttl time.Duration) *EntityCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &EntityCache{client: client, ttl: ttl}
}

// Put upserts each record by id. Re-putting an id replaces the
// previous value; nothing is appended.
func (c *EntityCache) Put(ctx context.Context, store string, records []ports.CacheRecord) error {
	if len(records) == 0 {
		return nil
	}

	key := c.key(store)
	pairs := make([]any, 0, len(records)*2)
	for _, record := range records {
		pairs = append(pairs, record.ID, record.Data)
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, pairs...)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache put %s: %w", store, err)
	}
	return nil
}

// GetAll returns every record in the namespace. Hash field order is
// not significant.
func (c *EntityCache) GetAll(ctx context.Context, store string) ([][]byte, error) {
	values, err := c.client.HGetAll(ctx, c.key(store)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache read %s: %w", store, err)
	}

	out := make([][]byte, 0, len(values))
	for _, v := range values {
		out = append(out, []byte(v))
	}
	return out, nil
}

// Delete removes one record from the namespace.
func (c *EntityCache) Delete(ctx context.Context, store string, id string) error {
	if err := c.client.HDel(ctx, c.key(store), id).Err(); err != nil {
		return fmt.Errorf("cache delete %s/%s: %w", store, id, err)
	}
	return nil
}

// RefreshTTL re-applies the namespace TTL. Used by the periodic
// cleanup job so long-lived deployments do not drop their mirror while
// the primary store is down.
func (c *EntityCache) RefreshTTL(ctx context.Context, stores ...string) error {
	for _, store := range stores {
		if err := c.client.Expire(ctx, c.key(store), c.ttl).Err(); err != nil {
			return fmt.Errorf("cache refresh %s: %w", store, err)
		}
	}
	return nil
}

func (c *EntityCache) key(store string) string {
	return "cache:" + store
}
