// Package source implements the Source repository using PostgreSQL.
// A source's public token lives in the source_id column; the primary key is
// the internal id.
package source

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

const table = "sources"

var columns = []string{"id", "project_id", "name", "source_id", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides source persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new source repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a source. A missing project yields domain.ErrNotFound
// through the foreign key.
func (r *Repo) Create(ctx context.Context, s *domain.Source) (*domain.Source, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "project_id", "name", "source_id").
		Values(s.ID, s.ProjectID, s.Name, s.Token).
		Suffix(returning)

	var out domain.Source
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "source", s.ID)
	}
	return &out, nil
}

// GetByID returns a source by internal id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var out domain.Source
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return &out, nil
}

// GetByToken resolves a public token to its source. The row is locked FOR
// SHARE so that, inside a transaction, a concurrent token regeneration
// either waits for the caller to commit or makes this lookup miss.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.Source, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"source_id": token}).
		Suffix("FOR SHARE")

	var out domain.Source
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, fmt.Errorf("source by token: %w", postgres.MapError(err, "source", uuid.Nil))
	}
	return &out, nil
}

// ListByProject returns the sources of a project, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Source, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("created_at DESC", "id DESC")

	var out []domain.Source
	if err := postgres.Select(ctx, r.pool, &out, q); err != nil {
		return nil, fmt.Errorf("list sources: %w", postgres.MapError(err, "project", projectID))
	}
	if out == nil {
		out = []domain.Source{}
	}
	return out, nil
}

// UpdateToken replaces the public token in a single-row update. The old
// token stops resolving as soon as the statement commits.
func (r *Repo) UpdateToken(ctx context.Context, id uuid.UUID, token string) (*domain.Source, error) {
	q := postgres.Builder().
		Update(table).
		Set("source_id", token).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var out domain.Source
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "source", id)
	}
	return &out, nil
}
