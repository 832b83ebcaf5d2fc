// Package ownership resolves the User -> Project -> Source -> Feedback chain
// for an entity in one round trip per lookup.
package ownership

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/loopback-backend/internal/adapter/postgres"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Raw SQL for chain lookups
// ---------------------------------------------------------------------------

const projectChainSQL = `
SELECT p.user_id, p.id AS project_id
FROM projects p
WHERE p.id = $1`

const sourceChainSQL = `
SELECT p.user_id, p.id AS project_id, s.id AS source_id
FROM sources s
JOIN projects p ON p.id = s.project_id
WHERE s.id = $1`

const feedbackChainSQL = `
SELECT p.user_id, p.id AS project_id, s.id AS source_id, f.id AS feedback_id
FROM feedbacks f
JOIN sources s ON s.id = f.source
JOIN projects p ON p.id = s.project_id
WHERE f.id = $1`

// Repo reads ownership chains.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ownership repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ProjectChain returns the owner of a project.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) ProjectChain(ctx context.Context, projectID uuid.UUID) (domain.OwnerChain, error) {
	return r.chain(ctx, projectChainSQL, "project", projectID)
}

// SourceChain returns a source with its project and owner.
// Returns domain.ErrNotFound if any link is missing.
func (r *Repo) SourceChain(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error) {
	return r.chain(ctx, sourceChainSQL, "source", sourceID)
}

// FeedbackChain returns a feedback item with its source, project and owner.
// Returns domain.ErrNotFound if any link is missing.
func (r *Repo) FeedbackChain(ctx context.Context, feedbackID uuid.UUID) (domain.OwnerChain, error) {
	return r.chain(ctx, feedbackChainSQL, "feedback", feedbackID)
}

func (r *Repo) chain(ctx context.Context, sql, entity string, id uuid.UUID) (domain.OwnerChain, error) {
	var c domain.OwnerChain
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &c, sql, id); err != nil {
		return domain.OwnerChain{}, postgres.MapError(err, entity, id)
	}
	return c, nil
}
