package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// GetStatsInput narrows statistics to a project and/or source. Nil means all.
type GetStatsInput struct {
	ProjectID *uuid.UUID
	SourceID  *uuid.UUID
}

// GetStats returns the feedback total, mean rating and trailing daily
// histogram over everything userID owns inside the requested scope.
//
// A source scope is resolved to its project first, so the cached value
// lives under the same key that feedback mutations invalidate. A source the
// user cannot see, or one outside the requested project, yields empty stats.
func (s *Service) GetStats(ctx context.Context, userID string, input GetStatsInput) (*domain.AnalyticsStats, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	scope := domain.AnalyticsScope{ProjectID: input.ProjectID, SourceID: input.SourceID}
	if scope.SourceID != nil {
		chain, err := s.owners.AuthorizeSource(ctx, userID, *scope.SourceID)
		if err != nil {
			if domain.IsDenial(err) {
				s.log.DebugContext(ctx, "analytics scope denied",
					slog.String("user_id", userID),
					slog.String("source_id", scope.SourceID.String()),
				)
				return domain.EmptyAnalyticsStats(), nil
			}
			return nil, fmt.Errorf("get stats: %w", err)
		}
		if scope.ProjectID != nil && *scope.ProjectID != chain.ProjectID {
			return domain.EmptyAnalyticsStats(), nil
		}
		projectID := chain.ProjectID
		scope.ProjectID = &projectID
	}

	key := cache.AnalyticsKey(userID, scope.ProjectID, scope.SourceID)
	stats, err := cache.GetOrCompute(ctx, s.cache, key, cache.AnalyticsTTL,
		func(ctx context.Context) (*domain.AnalyticsStats, error) {
			since := s.windowStart()
			return s.stats.Stats(ctx, userID, scope, since)
		})
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// windowStart is midnight UTC at the start of the trailing window, so the
// histogram spans AnalyticsWindowDays days including today.
func (s *Service) windowStart() time.Time {
	today := s.clock().UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -(domain.AnalyticsWindowDays - 1))
}
