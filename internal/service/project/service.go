package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Project, error)
}

const MaxNameLength = 100

// Service provides project queries and mutations.
type Service struct {
	projects projectRepo
	cache    *cache.Store
	log      *slog.Logger
}

// NewService creates a new Project service. store may be nil (caching disabled).
func NewService(log *slog.Logger, projects projectRepo, store *cache.Store) *Service {
	return &Service{
		projects: projects,
		cache:    store,
		log:      log.With("service", "project"),
	}
}
