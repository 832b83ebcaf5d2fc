// Package analytics computes feedback aggregates for a user's projects.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/loopback-backend/internal/adapter/postgres"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Repo runs aggregate queries over feedbacks joined to their owning user.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type totalsRow struct {
	Total   int     `db:"total"`
	Average float64 `db:"average"`
}

// Stats returns the feedback count and mean rating over everything userID
// owns within scope, plus a per-day (UTC) histogram of items created at or
// after since. Days without feedback are absent from the histogram.
//
// The two queries run concurrently on separate pool connections, so Stats
// must not be called inside a transaction.
func (r *Repo) Stats(ctx context.Context, userID string, scope domain.AnalyticsScope, since time.Time) (*domain.AnalyticsStats, error) {
	filter := ownedBy(userID, scope)

	totalsQ := postgres.Builder().
		Select("count(*) AS total", "COALESCE(avg(f.rating), 0)::float8 AS average").
		From("feedbacks f").
		Join("sources s ON s.id = f.source").
		Join("projects p ON p.id = s.project_id").
		Where(filter)

	histQ := postgres.Builder().
		Select(
			"to_char(date_trunc('day', f.created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS date",
			"count(*) AS count",
		).
		From("feedbacks f").
		Join("sources s ON s.id = f.source").
		Join("projects p ON p.id = s.project_id").
		Where(filter).
		Where(squirrel.GtOrEq{"f.created_at": since}).
		GroupBy("1").
		OrderBy("1")

	var (
		totals totalsRow
		days   []domain.DailyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return postgres.Get(gctx, r.pool, &totals, totalsQ)
	})
	g.Go(func() error {
		return postgres.Select(gctx, r.pool, &days, histQ)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics stats: %w", postgres.MapError(err, "analytics", scopeID(scope)))
	}

	if days == nil {
		days = []domain.DailyCount{}
	}
	return &domain.AnalyticsStats{
		TotalFeedbacks:    totals.Total,
		AverageRating:     totals.Average,
		FeedbacksOverTime: days,
	}, nil
}

func ownedBy(userID string, scope domain.AnalyticsScope) squirrel.And {
	and := squirrel.And{squirrel.Eq{"p.user_id": userID}}
	if scope.ProjectID != nil {
		and = append(and, squirrel.Eq{"p.id": *scope.ProjectID})
	}
	if scope.SourceID != nil {
		and = append(and, squirrel.Eq{"s.id": *scope.SourceID})
	}
	return and
}

func scopeID(scope domain.AnalyticsScope) uuid.UUID {
	switch {
	case scope.SourceID != nil:
		return *scope.SourceID
	case scope.ProjectID != nil:
		return *scope.ProjectID
	default:
		return uuid.Nil
	}
}
