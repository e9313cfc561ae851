package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/websap/websap-api/internal/api"
	"github.com/websap/websap-api/internal/infrastructure/config"
	mongodb "github.com/websap/websap-api/internal/infrastructure/db/mongo"
	redisdb "github.com/websap/websap-api/internal/infrastructure/db/redis"
	"github.com/websap/websap-api/internal/infrastructure/jobs"
	"github.com/websap/websap-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Mongo is the authoritative store; refusing to start without it is
	// the one hard dependency.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	// Redis is the optional cache tier: a failed ping is logged and the
	// service runs with the tier dark until Redis comes back.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, cache tier disabled until it recovers")
	}

	ensureSchemas(ctx, db, log)

	e, dispatcher, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}
	dispatcher.Start(ctx)

	cache := redisdb.NewEntityCache(rdb, cfg.CacheTTL)
	cleanup := jobs.NewCleanup(db, rdb, cache, log)
	if err := cleanup.Start(cfg.CleanupSchedule); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.CleanupSchedule).Msg("cleanup job setup failed")
	}
	defer cleanup.Stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// ensureSchemas creates indexes and collections once at startup.
// Failures are logged, not fatal: the service can still answer from
// the lower tiers.
func ensureSchemas(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	type ensurer interface {
		EnsureIndexes(ctx context.Context) error
	}
	for name, repo := range map[string]ensurer{
		"menu_items": mongodb.NewMenuRepository(db),
		"usuarios":   mongodb.NewUserRepository(db),
		"reservas":   mongodb.NewReservationRepository(db),
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index setup failed")
		}
	}
	if err := mongodb.NewNotificationRepository(db).EnsureSchema(ctx); err != nil {
		log.Warn().Err(err).Str("collection", "notificaciones").Msg("schema setup failed")
	}
}
