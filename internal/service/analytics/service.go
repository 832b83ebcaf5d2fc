package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

type statsRepo interface {
	Stats(ctx context.Context, userID string, scope domain.AnalyticsScope, since time.Time) (*domain.AnalyticsStats, error)
}

type authorizer interface {
	AuthorizeSource(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)
}

// Service computes dashboard statistics.
type Service struct {
	stats  statsRepo
	owners authorizer
	cache  *cache.Store
	clock  func() time.Time
	log    *slog.Logger
}

// NewService creates a new Analytics service. store may be nil (caching disabled).
func NewService(log *slog.Logger, stats statsRepo, owners authorizer, store *cache.Store) *Service {
	return &Service{
		stats:  stats,
		owners: owners,
		cache:  store,
		clock:  time.Now,
		log:    log.With("service", "analytics"),
	}
}
