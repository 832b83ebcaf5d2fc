// Package ownership authorizes a principal against the
// User -> Project -> Source -> Feedback chain.
package ownership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

type chainRepo interface {
	ProjectChain(ctx context.Context, projectID uuid.UUID) (domain.OwnerChain, error)
	SourceChain(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error)
	FeedbackChain(ctx context.Context, feedbackID uuid.UUID) (domain.OwnerChain, error)
}

// Resolver walks ownership chains. Denials are never cached: only the
// resolved chain of a source (a fact about the data, not about any caller)
// is kept, and the principal is compared against it on every call.
type Resolver struct {
	chains chainRepo
	cache  *cache.Store
	log    *slog.Logger
}

// NewResolver creates a Resolver. store may be nil (caching disabled).
func NewResolver(log *slog.Logger, chains chainRepo, store *cache.Store) *Resolver {
	return &Resolver{
		chains: chains,
		cache:  store,
		log:    log.With("service", "ownership"),
	}
}

// Authorize resolves the chain of the entity and checks that it ends at
// userID. It always reads the store.
//
// Errors: domain.ErrUnauthorized for an empty userID, domain.ErrNotFound
// when any link is missing, domain.ErrForbidden when the chain belongs to
// someone else.
func (r *Resolver) Authorize(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error) {
	if userID == "" {
		return domain.OwnerChain{}, domain.ErrUnauthorized
	}

	var (
		chain domain.OwnerChain
		err   error
	)
	switch kind {
	case domain.EntityProject:
		chain, err = r.chains.ProjectChain(ctx, id)
	case domain.EntitySource:
		chain, err = r.chains.SourceChain(ctx, id)
	case domain.EntityFeedback:
		chain, err = r.chains.FeedbackChain(ctx, id)
	default:
		return domain.OwnerChain{}, domain.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}
	if err != nil {
		return domain.OwnerChain{}, fmt.Errorf("authorize %s: %w", kind, err)
	}

	return r.check(ctx, userID, kind, id, chain)
}

// AuthorizeSource is Authorize for a source with the chain lookup served
// from the cache (source:{id}:owner).
func (r *Resolver) AuthorizeSource(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error) {
	if userID == "" {
		return domain.OwnerChain{}, domain.ErrUnauthorized
	}

	chain, err := r.SourceChain(ctx, sourceID)
	if err != nil {
		return domain.OwnerChain{}, fmt.Errorf("authorize %s: %w", domain.EntitySource, err)
	}

	return r.check(ctx, userID, domain.EntitySource, sourceID, chain)
}

// SourceChain returns the cached ownership chain of a source without
// checking any principal. Ingestion uses it to find the keys a new item
// makes stale.
func (r *Resolver) SourceChain(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error) {
	return cache.GetOrCompute(ctx, r.cache, cache.SourceOwnerKey(sourceID), cache.OwnerTTL,
		func(ctx context.Context) (domain.OwnerChain, error) {
			return r.chains.SourceChain(ctx, sourceID)
		})
}

func (r *Resolver) check(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID, chain domain.OwnerChain) (domain.OwnerChain, error) {
	if !chain.OwnedBy(userID) {
		r.log.DebugContext(ctx, "ownership denied",
			slog.String("user_id", userID),
			slog.String("kind", string(kind)),
			slog.String("id", id.String()),
		)
		return domain.OwnerChain{}, fmt.Errorf("%s %s: %w", kind, id, domain.ErrForbidden)
	}
	return chain, nil
}
