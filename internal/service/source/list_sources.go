package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// ListSources returns the sources of a project owned by userID, newest
// first. A missing principal, a missing project and a foreign project all
// yield an empty list so that the caller cannot probe for existence.
func (s *Service) ListSources(ctx context.Context, userID string, projectID uuid.UUID) ([]domain.Source, error) {
	if userID == "" {
		return []domain.Source{}, nil
	}

	if _, err := s.owners.Authorize(ctx, userID, domain.EntityProject, projectID); err != nil {
		if domain.IsDenial(err) {
			return []domain.Source{}, nil
		}
		return nil, fmt.Errorf("list sources: %w", err)
	}

	sources, err := s.sources.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	return sources, nil
}
