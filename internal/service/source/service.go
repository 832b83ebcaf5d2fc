package source

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

type sourceRepo interface {
	Create(ctx context.Context, s *domain.Source) (*domain.Source, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Source, error)
	UpdateToken(ctx context.Context, id uuid.UUID, token string) (*domain.Source, error)
}

type authorizer interface {
	Authorize(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error)
	AuthorizeSource(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)
}

const MaxNameLength = 100

// Service provides source queries and mutations. Source listings are not
// cached; only the ownership sub-check of GetSource is (inside authorizer).
type Service struct {
	sources  sourceRepo
	owners   authorizer
	newToken func() (string, error)
	log      *slog.Logger
}

// NewService creates a new Source service.
func NewService(log *slog.Logger, sources sourceRepo, owners authorizer) *Service {
	return &Service{
		sources:  sources,
		owners:   owners,
		newToken: domain.NewSourceToken,
		log:      log.With("service", "source"),
	}
}
