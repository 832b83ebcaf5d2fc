package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// GetSource returns a source owned by userID. The ownership chain comes
// from the cache; the source row itself is always read from the store so
// that a regenerated token is visible immediately.
func (s *Service) GetSource(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error) {
	if _, err := s.owners.AuthorizeSource(ctx, userID, sourceID); err != nil {
		return nil, err
	}

	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}

	return src, nil
}
