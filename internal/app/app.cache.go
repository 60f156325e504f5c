package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/repository"
	"github.com/joshuarp/remote-image-loader/internal/shared/config"
	sharedhash "github.com/joshuarp/remote-image-loader/internal/shared/hash"
	"github.com/joshuarp/remote-image-loader/internal/shared/metrics"
)

const (
	persistentBackendNone     = "none"
	persistentBackendRedis    = "redis"
	persistentBackendPostgres = "postgres"

	schemaTimeout = 10 * time.Second
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

type persistentTierIn struct {
	fx.In

	Config config.ConfigProvider
	Logger *slog.Logger
	Keyer  sharedhash.Keyer
	Redis  *redis.Client
}

type persistentTierOut struct {
	fx.Out

	Tier    repository.CacheTier
	CacheDB *sqlx.DB `name:"db_cache"`
}

// providePersistentTier opens the backend selected by cache.persistent.backend.
// "none" yields a nil tier and the cache runs memory-only.
func providePersistentTier(in persistentTierIn) (persistentTierOut, error) {
	backend := strings.TrimSpace(strings.ToLower(in.Config.GetString("cache.persistent.backend")))
	budget := in.Config.GetInt64("cache.persistent.budget_bytes")

	switch backend {
	case "", persistentBackendNone:
		in.Logger.Info("persistent cache tier disabled")
		return persistentTierOut{}, nil

	case persistentBackendRedis:
		tier := repository.NewRedisCache(
			in.Redis,
			in.Keyer,
			budget,
			repository.WithRedisCachePrefix(in.Config.GetString("cache.persistent.prefix")),
		)
		in.Logger.Info("persistent cache tier enabled", "backend", backend, "budget_bytes", budget)
		return persistentTierOut{Tier: tier}, nil

	case persistentBackendPostgres:
		db, err := providePostgresSQLX(in.Config)
		if err != nil {
			return persistentTierOut{}, err
		}

		tier := repository.NewPostgresCache(db, in.Keyer, budget)

		ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
		defer cancel()
		if err := tier.EnsureSchema(ctx); err != nil {
			db.Close()
			return persistentTierOut{}, fmt.Errorf("app: %w", err)
		}

		in.Logger.Info("persistent cache tier enabled", "backend", backend, "budget_bytes", budget)
		return persistentTierOut{Tier: tier, CacheDB: db}, nil

	default:
		return persistentTierOut{}, fmt.Errorf("app: unknown persistent cache backend %q", backend)
	}
}

func provideMemoryCache(cfg config.ConfigProvider) (*repository.MemoryCache, error) {
	memory, err := repository.NewMemoryCache(cfg.GetInt64("cache.memory.budget_bytes"))
	if err != nil {
		return nil, fmt.Errorf("app: failed to init memory cache: %w", err)
	}

	return memory, nil
}

func provideResponseCache(
	memory *repository.MemoryCache,
	persistent repository.CacheTier,
	logger *slog.Logger,
	collector *metrics.Collector,
) *repository.ResponseCache {
	return repository.NewResponseCache(memory, persistent, logger, collector)
}
