package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/cache"
	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// store is an in-memory stand-in for the feedback, source and ownership
// tables, exposed through the package's mocks.
type store struct {
	mu      sync.Mutex
	items   []domain.Feedback
	sources map[uuid.UUID]domain.OwnerChain
	tokens  map[string]uuid.UUID
}

func newStore() *store {
	return &store{
		sources: map[uuid.UUID]domain.OwnerChain{},
		tokens:  map[string]uuid.UUID{},
	}
}

// addSource registers a source owned by userID under a fresh project.
func (s *store) addSource(userID string) domain.OwnerChain {
	s.mu.Lock()
	defer s.mu.Unlock()
	chain := domain.OwnerChain{UserID: userID, ProjectID: uuid.New(), SourceID: uuid.New()}
	s.sources[chain.SourceID] = chain
	tok, _ := domain.NewSourceToken()
	s.tokens[tok] = chain.SourceID
	return chain
}

func (s *store) tokenFor(sourceID uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, id := range s.tokens {
		if id == sourceID {
			return tok
		}
	}
	return ""
}

func (s *store) add(sourceID uuid.UUID, rating int, message string, at time.Time) domain.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb := domain.Feedback{ID: uuid.Must(uuid.NewV7()), SourceID: sourceID, Rating: rating, Message: message, CreatedAt: at}
	s.items = append(s.items, fb)
	return fb
}

// ranked returns the source's items newest first with serials assigned.
func (s *store) ranked(sourceID uuid.UUID) []domain.FeedbackItem {
	var out []domain.FeedbackItem
	for _, fb := range s.items {
		if fb.SourceID == sourceID {
			out = append(out, domain.FeedbackItem{Feedback: fb})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	for i := range out {
		out[i].Serial = i + 1
	}
	return out
}

func (s *store) feedbackRepo() *feedbackRepoMock {
	return &feedbackRepoMock{
		CountBySourceFunc: func(_ context.Context, sourceID uuid.UUID) (int, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return len(s.ranked(sourceID)), nil
		},
		ListFunc: func(_ context.Context, f domain.FeedbackFilter) ([]domain.FeedbackItem, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			out := []domain.FeedbackItem{}
			for _, it := range s.ranked(f.SourceID) {
				if f.Query == "" || strings.Contains(strings.ToLower(it.Message), strings.ToLower(f.Query)) {
					out = append(out, it)
				}
			}
			if f.Offset >= len(out) {
				return []domain.FeedbackItem{}, nil
			}
			out = out[f.Offset:]
			if len(out) > f.Limit {
				out = out[:f.Limit]
			}
			return out, nil
		},
		GetAtFunc: func(_ context.Context, sourceID uuid.UUID, offset int) (*domain.FeedbackItem, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			r := s.ranked(sourceID)
			if offset >= len(r) {
				return nil, domain.ErrNotFound
			}
			return &r[offset], nil
		},
		CreateFunc: func(_ context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.sources[fb.SourceID]; !ok {
				return nil, domain.ErrNotFound
			}
			out := *fb
			out.CreatedAt = time.Now()
			s.items = append(s.items, out)
			return &out, nil
		},
		DeleteFunc: func(_ context.Context, id uuid.UUID) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, fb := range s.items {
				if fb.ID == id {
					s.items = append(s.items[:i], s.items[i+1:]...)
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
}

func (s *store) tokenRepo() *tokenRepoMock {
	return &tokenRepoMock{
		GetByTokenFunc: func(_ context.Context, token string) (*domain.Source, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			id, ok := s.tokens[token]
			if !ok {
				return nil, fmt.Errorf("source by token: %w", domain.ErrNotFound)
			}
			return &domain.Source{ID: id, ProjectID: s.sources[id].ProjectID, Token: token}, nil
		},
	}
}

func (s *store) authorizer() *authorizerMock {
	sourceChain := func(id uuid.UUID) (domain.OwnerChain, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c, ok := s.sources[id]
		if !ok {
			return domain.OwnerChain{}, fmt.Errorf("source %s: %w", id, domain.ErrNotFound)
		}
		return c, nil
	}
	check := func(userID string, c domain.OwnerChain) (domain.OwnerChain, error) {
		if userID == "" {
			return domain.OwnerChain{}, domain.ErrUnauthorized
		}
		if c.UserID != userID {
			return domain.OwnerChain{}, domain.ErrForbidden
		}
		return c, nil
	}
	return &authorizerMock{
		AuthorizeFunc: func(_ context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error) {
			if kind != domain.EntityFeedback {
				return domain.OwnerChain{}, fmt.Errorf("unexpected kind %s", kind)
			}
			if userID == "" {
				return domain.OwnerChain{}, domain.ErrUnauthorized
			}
			s.mu.Lock()
			var (
				found bool
				fb    domain.Feedback
			)
			for _, it := range s.items {
				if it.ID == id {
					found, fb = true, it
				}
			}
			s.mu.Unlock()
			if !found {
				return domain.OwnerChain{}, fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
			}
			c, err := sourceChain(fb.SourceID)
			if err != nil {
				return domain.OwnerChain{}, err
			}
			c.FeedbackID = id
			return check(userID, c)
		},
		AuthorizeSourceFunc: func(_ context.Context, userID string, id uuid.UUID) (domain.OwnerChain, error) {
			if userID == "" {
				return domain.OwnerChain{}, domain.ErrUnauthorized
			}
			c, err := sourceChain(id)
			if err != nil {
				return domain.OwnerChain{}, err
			}
			return check(userID, c)
		},
		SourceChainFunc: func(_ context.Context, id uuid.UUID) (domain.OwnerChain, error) {
			return sourceChain(id)
		},
	}
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// recordingBackend wraps a memory backend and records deleted keys.
type recordingBackend struct {
	*cache.MemoryBackend
	mu      sync.Mutex
	deleted []string
}

func (b *recordingBackend) Delete(ctx context.Context, keys ...string) error {
	b.mu.Lock()
	b.deleted = append(b.deleted, keys...)
	b.mu.Unlock()
	return b.MemoryBackend.Delete(ctx, keys...)
}

func (b *recordingBackend) Deleted() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.deleted...)
}

func newRecordingCache(t *testing.T) (*cache.Store, *recordingBackend) {
	t.Helper()
	mem := cache.NewMemoryBackend(1000)
	t.Cleanup(mem.Close)
	b := &recordingBackend{MemoryBackend: mem}
	return cache.New(slog.Default(), b), b
}

// downBackend is a cache service that refuses every call.
type downBackend struct{}

var errDown = fmt.Errorf("dial tcp: connection refused")

func (downBackend) Get(context.Context, string) ([]byte, error)                { return nil, errDown }
func (downBackend) Set(context.Context, string, []byte, time.Duration) error { return errDown }
func (downBackend) Delete(context.Context, ...string) error                    { return errDown }
func (downBackend) Ping(context.Context) error                                 { return errDown }

// fixture wires a Service to an in-memory store.
type fixture struct {
	store    *store
	feedback *feedbackRepoMock
	owners   *authorizerMock
	tx       *txManagerMock
	svc      *Service
}

func newFixture(t *testing.T, c *cache.Store) *fixture {
	t.Helper()
	st := newStore()
	f := &fixture{
		store:    st,
		feedback: st.feedbackRepo(),
		owners:   st.authorizer(),
		tx:       passthroughTx(),
	}
	f.svc = NewService(slog.Default(), f.feedback, st.tokenRepo(), f.owners, f.tx, c, Limits{})
	return f
}
