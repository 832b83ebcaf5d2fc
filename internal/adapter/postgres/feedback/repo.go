// Package feedback implements the Feedback repository using PostgreSQL.
//
// Every listing is ranked over the whole source with
// ROW_NUMBER() OVER (ORDER BY created_at DESC, id DESC) before any message
// filter is applied, so each returned item carries its true serial number
// (1 = newest) even in a filtered view.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/loopback-backend/internal/adapter/postgres"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

const table = "feedbacks"

var columns = []string{"id", "source", "rating", "message", "metadata", "created_at"}

// serialExpr numbers a source's items, newest first with id as tiebreak.
const serialExpr = "ROW_NUMBER() OVER (ORDER BY created_at DESC, id DESC) AS serial"

// likeEscaper escapes LIKE metacharacters; backslash is PostgreSQL's default
// LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountBySource returns the unfiltered number of items in a source.
func (r *Repo) CountBySource(ctx context.Context, sourceID uuid.UUID) (int, error) {
	q := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"source": sourceID})

	var count int
	if err := postgres.Get(ctx, r.pool, &count, q); err != nil {
		return 0, fmt.Errorf("count feedback: %w", postgres.MapError(err, "source", sourceID))
	}
	return count, nil
}

// List returns the window of a source's items selected by f, each with its
// serial number. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.FeedbackFilter) ([]domain.FeedbackItem, error) {
	ranked := postgres.Builder().
		Select(append(append([]string{}, columns...), serialExpr)...).
		From(table).
		Where(squirrel.Eq{"source": f.SourceID})

	q := postgres.Builder().
		Select(append(append([]string{}, columns...), "serial")...).
		FromSelect(ranked, "ranked").
		OrderBy("serial ASC").
		Limit(uint64(max(f.Limit, 0))).
		Offset(uint64(max(f.Offset, 0)))

	if f.Query != "" {
		q = q.Where(squirrel.ILike{"message": "%" + likeEscaper.Replace(f.Query) + "%"})
	}

	var out []domain.FeedbackItem
	if err := postgres.Select(ctx, r.pool, &out, q); err != nil {
		return nil, fmt.Errorf("list feedback: %w", postgres.MapError(err, "source", f.SourceID))
	}
	if out == nil {
		out = []domain.FeedbackItem{}
	}
	return out, nil
}

// GetAt returns the item at offset under the newest-first ordering, whose
// serial number is offset+1. Returns domain.ErrNotFound past the end.
func (r *Repo) GetAt(ctx context.Context, sourceID uuid.UUID, offset int) (*domain.FeedbackItem, error) {
	items, err := r.List(ctx, domain.FeedbackFilter{SourceID: sourceID, Offset: offset, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("feedback at offset %d in source %s: %w", offset, sourceID, domain.ErrNotFound)
	}
	return &items[0], nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a feedback item. A missing source yields domain.ErrNotFound
// through the foreign key.
func (r *Repo) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "source", "rating", "message", "metadata").
		Values(fb.ID, fb.SourceID, fb.Rating, fb.Message, fb.Metadata).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out domain.Feedback
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "feedback", fb.ID)
	}
	return &out, nil
}

// Delete removes a single item.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "feedback", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
