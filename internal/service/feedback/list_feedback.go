package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// ListFeedback returns a page of a source's feedback, newest first, each item
// with its serial number. TotalCount is the source's unfiltered total.
//
// A "#<n>" query returns only the item with serial n (TotalCount 1), or an
// empty page if no such item exists. The first page without a search term
// is served from the hot cache tier; every other shape reads the store.
//
// A missing principal or a denied source yields an empty page, not an error.
func (s *Service) ListFeedback(ctx context.Context, userID string, input ListFeedbackInput) (*domain.FeedbackPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalized()

	if userID == "" {
		return domain.EmptyFeedbackPage(), nil
	}
	if _, err := s.owners.AuthorizeSource(ctx, userID, in.SourceID); err != nil {
		if domain.IsDenial(err) {
			return domain.EmptyFeedbackPage(), nil
		}
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	if serial, ok := domain.ParseSerialQuery(in.Query); ok {
		return s.lookupSerial(ctx, in.SourceID, serial)
	}

	if cache.IsHotFeedbackPage(in.Page, in.Limit, in.Query) {
		hot, err := cache.GetOrCompute(ctx, s.cache, cache.FeedbackHotKey(in.SourceID), cache.HotFeedbackTTL,
			func(ctx context.Context) (*domain.FeedbackPage, error) {
				return s.page(ctx, domain.FeedbackFilter{SourceID: in.SourceID, Limit: cache.HotPageLimit})
			})
		if err != nil {
			return nil, fmt.Errorf("list feedback: %w", err)
		}
		return truncate(hot, in.Limit), nil
	}

	page, err := cache.Bypass(ctx, s.cache, func(ctx context.Context) (*domain.FeedbackPage, error) {
		return s.page(ctx, domain.FeedbackFilter{
			SourceID: in.SourceID,
			Query:    in.Query,
			Offset:   in.Page * in.Limit,
			Limit:    in.Limit,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return page, nil
}

// page reads the window and the source total concurrently.
func (s *Service) page(ctx context.Context, f domain.FeedbackFilter) (*domain.FeedbackPage, error) {
	var (
		items []domain.FeedbackItem
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.feedback.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.feedback.CountBySource(gctx, f.SourceID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.FeedbackPage{Items: items, TotalCount: total}, nil
}

func (s *Service) lookupSerial(ctx context.Context, sourceID uuid.UUID, serial int) (*domain.FeedbackPage, error) {
	total, err := s.feedback.CountBySource(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("serial lookup: %w", err)
	}

	offset, ok := domain.SerialOffset(serial, total)
	if !ok {
		return domain.EmptyFeedbackPage(), nil
	}

	item, err := s.feedback.GetAt(ctx, sourceID, offset)
	if err != nil {
		// The item may have been deleted between the count and the fetch.
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmptyFeedbackPage(), nil
		}
		return nil, fmt.Errorf("serial lookup: %w", err)
	}

	return &domain.FeedbackPage{Items: []domain.FeedbackItem{*item}, TotalCount: 1}, nil
}

// truncate serves a smaller limit from the hot value, which always holds
// the first HotPageLimit items.
func truncate(p *domain.FeedbackPage, limit int) *domain.FeedbackPage {
	if len(p.Items) <= limit {
		return p
	}
	return &domain.FeedbackPage{Items: p.Items[:limit], TotalCount: p.TotalCount}
}
