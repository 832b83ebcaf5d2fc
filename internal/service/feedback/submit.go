package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Submit stores a feedback item sent to a source's public token. The token
// is the only credential; it grants no read access. Token lookup and insert
// share a transaction with the source row locked, so an item is never
// accepted for a token that a concurrent regeneration already replaced.
//
// After commit the same keys as DeleteFeedback are invalidated.
func (s *Service) Submit(ctx context.Context, token string, input SubmitInput) (*domain.Feedback, error) {
	if !domain.IsSourceToken(token) {
		return nil, fmt.Errorf("source token: %w", domain.ErrNotFound)
	}
	if err := input.validate(s.limits); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate feedback id: %w", err)
	}

	metadata := input.Metadata
	if len(metadata) == 0 || string(metadata) == "null" {
		metadata = nil
	}

	var created *domain.Feedback
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		src, err := s.sources.GetByToken(txCtx, token)
		if err != nil {
			return err
		}

		created, err = s.feedback.Create(txCtx, &domain.Feedback{
			ID:       id,
			SourceID: src.ID,
			Rating:   input.Rating,
			Message:  strings.TrimSpace(input.Message),
			Metadata: metadata,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	chain, err := s.owners.SourceChain(ctx, created.SourceID)
	if err != nil {
		s.log.WarnContext(ctx, "feedback stored but cache keys unresolved",
			slog.String("source_id", created.SourceID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.cache.Invalidate(ctx, cache.FeedbackChangeKeys(chain)...)
	}

	s.log.InfoContext(ctx, "feedback received",
		slog.String("source_id", created.SourceID.String()),
		slog.String("feedback_id", created.ID.String()),
		slog.Int("rating", created.Rating),
	)

	return created, nil
}
