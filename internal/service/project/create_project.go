package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// CreateProject creates a project for userID and invalidates the user's
// cached project list before returning.
func (s *Service) CreateProject(ctx context.Context, userID string, input CreateProjectInput) (*domain.Project, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate project id: %w", err)
	}

	p, err := s.projects.Create(ctx, &domain.Project{
		ID:     id,
		UserID: userID,
		Name:   domain.NormalizeName(input.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate(ctx, cache.ProjectsKey(userID))

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID),
		slog.String("project_id", p.ID.String()),
		slog.String("name", p.Name),
	)

	return p, nil
}
