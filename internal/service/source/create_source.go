package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// CreateSource creates a source with a fresh public token inside a project
// owned by userID. Nothing is cached for the new source until it is first
// read.
func (s *Service) CreateSource(ctx context.Context, userID string, input CreateSourceInput) (*domain.Source, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.owners.Authorize(ctx, userID, domain.EntityProject, input.ProjectID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate source id: %w", err)
	}
	token, err := s.newToken()
	if err != nil {
		return nil, err
	}

	src, err := s.sources.Create(ctx, &domain.Source{
		ID:        id,
		ProjectID: input.ProjectID,
		Name:      domain.NormalizeName(input.Name),
		Token:     token,
	})
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	s.log.InfoContext(ctx, "source created",
		slog.String("user_id", userID),
		slog.String("project_id", src.ProjectID.String()),
		slog.String("source_id", src.ID.String()),
	)

	return src, nil
}
