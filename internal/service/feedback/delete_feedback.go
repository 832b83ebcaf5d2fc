package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// DeleteFeedback deletes one item after authorizing the full
// feedback -> source -> project -> user chain, then invalidates the source's
// hot listing and the three analytics scopes containing it before
// returning.
func (s *Service) DeleteFeedback(ctx context.Context, userID string, feedbackID uuid.UUID) error {
	chain, err := s.owners.Authorize(ctx, userID, domain.EntityFeedback, feedbackID)
	if err != nil {
		return err
	}

	if err := s.feedback.Delete(ctx, feedbackID); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}

	s.cache.Invalidate(ctx, cache.FeedbackChangeKeys(chain)...)

	s.log.InfoContext(ctx, "feedback deleted",
		slog.String("user_id", userID),
		slog.String("source_id", chain.SourceID.String()),
		slog.String("feedback_id", feedbackID.String()),
	)

	return nil
}
