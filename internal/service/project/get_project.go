package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// GetProject returns a project owned by userID. The cache key carries the
// principal, and a value is only stored after the ownership check passed,
// so a hit is always for the owner.
func (s *Service) GetProject(ctx context.Context, userID string, projectID uuid.UUID) (*domain.Project, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	p, err := cache.GetOrCompute(ctx, s.cache, cache.ProjectKey(userID, projectID), cache.EntityTTL,
		func(ctx context.Context) (*domain.Project, error) {
			p, err := s.projects.GetByID(ctx, projectID)
			if err != nil {
				return nil, err
			}
			if !p.OwnedBy(userID) {
				return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrForbidden)
			}
			return p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return p, nil
}
