package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh external user id. Users are not persisted; the id
// only scopes projects.
func NewUserID() string {
	return "user-" + uniqueSuffix()
}

// SeedProject inserts a project owned by userID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID string) domain.Project {
	t.Helper()

	p := domain.Project{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Name:      "Project " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.Name, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedSource inserts a source with a fresh token under projectID.
func SeedSource(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Source {
	t.Helper()

	token, err := domain.NewSourceToken()
	if err != nil {
		t.Fatalf("testhelper: SeedSource token: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Source{
		ID:        uuid.Must(uuid.NewV7()),
		ProjectID: projectID,
		Name:      "Source " + uniqueSuffix(),
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO sources (id, project_id, name, source_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.ProjectID, s.Name, s.Token, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSource: %v", err)
	}
	return s
}

// SeedFeedback inserts a feedback item under sourceID created at the given
// time, so tests control the listing order.
func SeedFeedback(t *testing.T, pool *pgxpool.Pool, sourceID uuid.UUID, rating int, message string, createdAt time.Time) domain.Feedback {
	t.Helper()

	f := domain.Feedback{
		ID:        uuid.Must(uuid.NewV7()),
		SourceID:  sourceID,
		Rating:    rating,
		Message:   message,
		Metadata:  json.RawMessage(`{"seed":true}`),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feedbacks (id, source, rating, message, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.SourceID, f.Rating, f.Message, f.Metadata, f.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeedback: %v", err)
	}
	return f
}

// SeedChain inserts a project, a source under it and returns the ownership
// chain for userID.
func SeedChain(t *testing.T, pool *pgxpool.Pool, userID string) (domain.Project, domain.Source) {
	t.Helper()
	p := SeedProject(t, pool, userID)
	s := SeedSource(t, pool, p.ID)
	return p, s
}
