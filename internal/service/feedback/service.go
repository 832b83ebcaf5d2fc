package feedback

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

type feedbackRepo interface {
	CountBySource(ctx context.Context, sourceID uuid.UUID) (int, error)
	List(ctx context.Context, f domain.FeedbackFilter) ([]domain.FeedbackItem, error)
	GetAt(ctx context.Context, sourceID uuid.UUID, offset int) (*domain.FeedbackItem, error)
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokenRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Source, error)
}

type authorizer interface {
	Authorize(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error)
	AuthorizeSource(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)
	SourceChain(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultLimit   = 20
	MaxLimit       = 100
	MaxQueryLength = 200
	MaxPage        = 1 << 20
)

// Limits bounds what untrusted clients may submit.
type Limits struct {
	MaxMessageLength int
	MaxMetadataBytes int
}

// DefaultLimits are used when NewService receives a zero Limits.
var DefaultLimits = Limits{MaxMessageLength: 5000, MaxMetadataBytes: 16 << 10}

// Service lists, deletes and ingests feedback.
type Service struct {
	feedback feedbackRepo
	sources  tokenRepo
	owners   authorizer
	tx       txManager
	cache    *cache.Store
	limits   Limits
	log      *slog.Logger
}

// NewService creates a new Feedback service. store may be nil (caching disabled).
func NewService(
	log *slog.Logger,
	feedback feedbackRepo,
	sources tokenRepo,
	owners authorizer,
	tx txManager,
	store *cache.Store,
	limits Limits,
) *Service {
	if limits.MaxMessageLength <= 0 {
		limits.MaxMessageLength = DefaultLimits.MaxMessageLength
	}
	if limits.MaxMetadataBytes <= 0 {
		limits.MaxMetadataBytes = DefaultLimits.MaxMetadataBytes
	}
	return &Service{
		feedback: feedback,
		sources:  sources,
		owners:   owners,
		tx:       tx,
		cache:    store,
		limits:   limits,
		log:      log.With("service", "feedback"),
	}
}
