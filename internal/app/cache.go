package app

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/config"
)

// NewCacheStore builds the cache-aside store for cfg. An unconfigured cache
// is not a startup failure: it logs a warning and returns a disabled store.
// A configured redis that is unreachable at startup is kept, since every
// call degrades on its own and the service recovers when redis returns.
//
// The returned func releases the backend.
func NewCacheStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger, reg prometheus.Registerer) (*cache.Store, func()) {
	if !cfg.Enabled() {
		logger.Warn("cache disabled, every read goes to the database",
			slog.String("backend", cfg.Backend),
			slog.Bool("disabled_flag", cfg.Disabled),
		)
		return cache.Disabled(), func() {}
	}

	var (
		backend cache.Backend
		release func()
	)
	switch cfg.Backend {
	case config.CacheBackendMemory:
		mem := cache.NewMemoryBackend(cfg.MemoryCapacity)
		backend, release = mem, mem.Close
	default:
		rb := cache.NewRedisBackend(cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Timeout:  cfg.OpTimeout,
		})
		backend = rb
		release = func() {
			if err := rb.Close(); err != nil {
				logger.Warn("close redis", slog.String("error", err.Error()))
			}
		}
	}

	opts := []cache.Option{
		cache.WithPrefix(cfg.KeyPrefix),
		cache.WithOpTimeout(cfg.OpTimeout),
	}
	if reg != nil {
		opts = append(opts, cache.WithMetrics(cache.NewMetrics(reg)))
	}
	store := cache.New(logger, backend, opts...)

	if err := store.Ping(ctx); err != nil {
		logger.Warn("cache unreachable at startup, continuing degraded",
			slog.String("backend", cfg.Backend),
			slog.String("error", err.Error()),
		)
	} else {
		logger.Info("cache connected", slog.String("backend", cfg.Backend))
	}

	return store, release
}
