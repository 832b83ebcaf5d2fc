package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Ensure, that statsRepoMock does implement statsRepo.
var _ statsRepo = &statsRepoMock{}

// statsRepoMock is a mock implementation of statsRepo.
type statsRepoMock struct {
	StatsFunc func(ctx context.Context, userID string, scope domain.AnalyticsScope, since time.Time) (*domain.AnalyticsStats, error)

	calls struct {
		Stats []struct {
			UserID string
			Scope  domain.AnalyticsScope
			Since  time.Time
		}
	}
	lockStats sync.RWMutex
}

func (m *statsRepoMock) Stats(ctx context.Context, userID string, scope domain.AnalyticsScope, since time.Time) (*domain.AnalyticsStats, error) {
	if m.StatsFunc == nil {
		panic("statsRepoMock.StatsFunc: method is nil but statsRepo.Stats was just called")
	}
	m.lockStats.Lock()
	m.calls.Stats = append(m.calls.Stats, struct {
		UserID string
		Scope  domain.AnalyticsScope
		Since  time.Time
	}{userID, scope, since})
	m.lockStats.Unlock()
	return m.StatsFunc(ctx, userID, scope, since)
}

func (m *statsRepoMock) StatsCalls() []struct {
	UserID string
	Scope  domain.AnalyticsScope
	Since  time.Time
} {
	m.lockStats.RLock()
	defer m.lockStats.RUnlock()
	return m.calls.Stats
}

// Ensure, that authorizerMock does implement authorizer.
var _ authorizer = &authorizerMock{}

// authorizerMock is a mock implementation of authorizer.
type authorizerMock struct {
	AuthorizeSourceFunc func(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)

	calls struct {
		AuthorizeSource []struct {
			UserID   string
			SourceID uuid.UUID
		}
	}
	lockAuthorizeSource sync.RWMutex
}

func (m *authorizerMock) AuthorizeSource(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error) {
	if m.AuthorizeSourceFunc == nil {
		panic("authorizerMock.AuthorizeSourceFunc: method is nil but authorizer.AuthorizeSource was just called")
	}
	m.lockAuthorizeSource.Lock()
	m.calls.AuthorizeSource = append(m.calls.AuthorizeSource, struct {
		UserID   string
		SourceID uuid.UUID
	}{userID, sourceID})
	m.lockAuthorizeSource.Unlock()
	return m.AuthorizeSourceFunc(ctx, userID, sourceID)
}

func (m *authorizerMock) AuthorizeSourceCalls() []struct {
	UserID   string
	SourceID uuid.UUID
} {
	m.lockAuthorizeSource.RLock()
	defer m.lockAuthorizeSource.RUnlock()
	return m.calls.AuthorizeSource
}
