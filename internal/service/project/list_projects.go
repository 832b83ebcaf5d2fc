package project

import (
	"context"
	"fmt"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// ListProjects returns the user's projects, newest first. Without a
// principal the list is empty.
func (s *Service) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	if userID == "" {
		return []domain.Project{}, nil
	}

	projects, err := cache.GetOrCompute(ctx, s.cache, cache.ProjectsKey(userID), cache.ProjectListTTL,
		func(ctx context.Context) ([]domain.Project, error) {
			return s.projects.ListByUser(ctx, userID)
		})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}
