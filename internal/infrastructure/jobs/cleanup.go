// Package jobs hosts the periodic maintenance tasks that run on a
// fixed schedule, independent of request flow.
package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/websap/websap-api/internal/core/domain"
	redisdb "github.com/websap/websap-api/internal/infrastructure/db/redis"
)

const cleanupTimeout = 15 * time.Second

// Cleanup pings the primary store so dead pooled connections are
// recycled outside the request path, and re-applies the cache
// namespace TTLs. Failures are logged only; in-flight requests are
// unaffected.
type Cleanup struct {
	mongo *mongo.Database
	redis *redis.Client
	cache *redisdb.EntityCache
	cron  *cron.Cron
	log   zerolog.Logger
}

func NewCleanup(db *mongo.Database, rdb *redis.Client, cache *redisdb.EntityCache, log zerolog.Logger) *Cleanup {
	return &Cleanup{
		mongo: db,
		redis: rdb,
		cache: cache,
		cron:  cron.New(),
		log:   log,
	}
}

// Start schedules the cleanup pass. The schedule accepts standard cron
// expressions and descriptors like "@every 5m".
func (c *Cleanup) Start(schedule string) error {
	if _, err := c.cron.AddFunc(schedule, c.run); err != nil {
		return err
	}
	c.cron.Start()
	c.log.Info().Str("schedule", schedule).Msg("connection cleanup job scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running pass to finish.
func (c *Cleanup) Stop() {
	<-c.cron.Stop().Done()
}

func (c *Cleanup) run() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := c.mongo.Client().Ping(ctx, nil); err != nil {
		c.log.Warn().Err(err).Msg("cleanup: primary store unreachable")
	}

	if err := c.redis.Ping(ctx).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cleanup: cache unreachable")
		return
	}
	err := c.cache.RefreshTTL(ctx, domain.StoreMenuItems, domain.StoreUsers, domain.StoreRoles)
	if err != nil {
		c.log.Warn().Err(err).Msg("cleanup: failed to refresh cache TTLs")
	}
}
