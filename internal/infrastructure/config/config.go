package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=10000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// FetchTimeout bounds each remote tier attempt before falling back.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT, default=8s"`
	// CacheTTL is how long cached entity snapshots survive without a refresh.
	CacheTTL time.Duration `env:"CACHE_TTL, default=24h"`
	// CleanupSchedule is a cron expression or descriptor for the
	// connection maintenance job.
	CleanupSchedule string `env:"CLEANUP_SCHEDULE, default=@every 5m"`
	// NotificationWorkers is the number of sharded reservation workers.
	NotificationWorkers int `env:"NOTIFICATION_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=websap"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; real environment
// variables win.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
