package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// RegenerateToken replaces the source's public token in one row update.
// The previous token stops resolving once this returns. No cache key holds
// the token, so nothing is invalidated.
func (s *Service) RegenerateToken(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error) {
	if _, err := s.owners.Authorize(ctx, userID, domain.EntitySource, sourceID); err != nil {
		return nil, err
	}

	token, err := s.newToken()
	if err != nil {
		return nil, err
	}

	src, err := s.sources.UpdateToken(ctx, sourceID, token)
	if err != nil {
		return nil, fmt.Errorf("regenerate token: %w", err)
	}

	s.log.InfoContext(ctx, "source token regenerated",
		slog.String("user_id", userID),
		slog.String("source_id", sourceID.String()),
	)

	return src, nil
}
