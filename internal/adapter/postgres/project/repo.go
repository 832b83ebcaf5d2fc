// Package project implements the Project repository using PostgreSQL.
package project

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

const table = "projects"

var columns = []string{"id", "user_id", "name", "created_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a project and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "name").
		Values(p.ID, p.UserID, p.Name).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out domain.Project
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return &out, nil
}

// GetByID returns a project by primary key regardless of owner; ownership is
// checked by the caller.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var out domain.Project
	if err := postgres.Get(ctx, r.pool, &out, q); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &out, nil
}

// ListByUser returns all projects of userID, newest first.
// Returns an empty slice (not nil) when the user has no projects.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	var out []domain.Project
	if err := postgres.Select(ctx, r.pool, &out, q); err != nil {
		return nil, fmt.Errorf("list projects: %w", postgres.MapError(err, "project", uuid.Nil))
	}
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}
