package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/loopback-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/loopback-backend/internal/adapter/postgres/analytics"
	feedbackrepo "github.com/heartmarshall/loopback-backend/internal/adapter/postgres/feedback"
	ownershiprepo "github.com/heartmarshall/loopback-backend/internal/adapter/postgres/ownership"
	projectrepo "github.com/heartmarshall/loopback-backend/internal/adapter/postgres/project"
	sourcerepo "github.com/heartmarshall/loopback-backend/internal/adapter/postgres/source"
	"github.com/heartmarshall/loopback-backend/internal/auth"
	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/config"
	"github.com/heartmarshall/loopback-backend/internal/service/analytics"
	"github.com/heartmarshall/loopback-backend/internal/service/feedback"
	"github.com/heartmarshall/loopback-backend/internal/service/ownership"
	"github.com/heartmarshall/loopback-backend/internal/service/project"
	"github.com/heartmarshall/loopback-backend/internal/service/source"
	"github.com/heartmarshall/loopback-backend/internal/transport/middleware"
	"github.com/heartmarshall/loopback-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle per-client limiters are swept.
const rateLimitCleanup = time.Minute

// Run is the application entry point. It connects to the database and the
// cache, wires services and serves HTTP until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, closeCache := NewCacheStore(ctx, cfg.Cache, logger, registry)
	defer closeCache()

	handler, release := NewHandler(logger, cfg, pool, store, registry)
	defer release()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// NewHandler wires repositories, services and transport into the full HTTP
// handler. store may be disabled; registry receives HTTP metrics and backs
// /metrics. The returned func stops background workers.
func NewHandler(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	store *cache.Store,
	registry *prometheus.Registry,
) (http.Handler, func()) {
	// Repositories
	txm := postgres.NewTxManager(pool)
	projects := projectrepo.New(pool)
	sources := sourcerepo.New(pool)
	feedbacks := feedbackrepo.New(pool)
	stats := analyticsrepo.New(pool)
	chains := ownershiprepo.New(pool)

	// Services
	resolver := ownership.NewResolver(logger, chains, store)
	projectSvc := project.NewService(logger, projects, store)
	sourceSvc := source.NewService(logger, sources, resolver)
	feedbackSvc := feedback.NewService(logger, feedbacks, sources, resolver, txm, store, feedback.Limits{
		MaxMessageLength: cfg.Ingest.MaxMessageLength,
		MaxMetadataBytes: cfg.Ingest.MaxMetadataBytes,
	})
	analyticsSvc := analytics.NewService(logger, stats, resolver, store)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	var cachePinger interface{ Ping(context.Context) error }
	if store.Enabled() {
		cachePinger = store
	}

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, cachePinger, Version),
		Project:     rest.NewProjectHandler(projectSvc, logger),
		Source:      rest.NewSourceHandler(sourceSvc, logger),
		Feedback:    rest.NewFeedbackHandler(feedbackSvc, int64(cfg.Ingest.MaxBodyBytes), logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsSvc, logger),
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		IngestLimit: limiter.Limit(cfg.Ingest.RateLimitPerMinute),
	}, rest.NewMetrics(registry))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, logger),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)(router)

	return handler, limiter.Stop
}
