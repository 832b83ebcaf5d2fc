package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Ensure, that feedbackRepoMock does implement feedbackRepo.
var _ feedbackRepo = &feedbackRepoMock{}

// feedbackRepoMock is a mock implementation of feedbackRepo.
type feedbackRepoMock struct {
	CountBySourceFunc func(ctx context.Context, sourceID uuid.UUID) (int, error)
	ListFunc          func(ctx context.Context, f domain.FeedbackFilter) ([]domain.FeedbackItem, error)
	GetAtFunc         func(ctx context.Context, sourceID uuid.UUID, offset int) (*domain.FeedbackItem, error)
	CreateFunc        func(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CountBySource []struct{ SourceID uuid.UUID }
		List          []struct{ F domain.FeedbackFilter }
		GetAt         []struct {
			SourceID uuid.UUID
			Offset   int
		}
		Create []struct{ Fb *domain.Feedback }
		Delete []struct{ ID uuid.UUID }
	}
	lockCountBySource sync.RWMutex
	lockList          sync.RWMutex
	lockGetAt         sync.RWMutex
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
}

func (m *feedbackRepoMock) CountBySource(ctx context.Context, sourceID uuid.UUID) (int, error) {
	if m.CountBySourceFunc == nil {
		panic("feedbackRepoMock.CountBySourceFunc: method is nil but feedbackRepo.CountBySource was just called")
	}
	m.lockCountBySource.Lock()
	m.calls.CountBySource = append(m.calls.CountBySource, struct{ SourceID uuid.UUID }{sourceID})
	m.lockCountBySource.Unlock()
	return m.CountBySourceFunc(ctx, sourceID)
}

func (m *feedbackRepoMock) CountBySourceCalls() []struct{ SourceID uuid.UUID } {
	m.lockCountBySource.RLock()
	defer m.lockCountBySource.RUnlock()
	return m.calls.CountBySource
}

func (m *feedbackRepoMock) List(ctx context.Context, f domain.FeedbackFilter) ([]domain.FeedbackItem, error) {
	if m.ListFunc == nil {
		panic("feedbackRepoMock.ListFunc: method is nil but feedbackRepo.List was just called")
	}
	m.lockList.Lock()
	m.calls.List = append(m.calls.List, struct{ F domain.FeedbackFilter }{f})
	m.lockList.Unlock()
	return m.ListFunc(ctx, f)
}

func (m *feedbackRepoMock) ListCalls() []struct{ F domain.FeedbackFilter } {
	m.lockList.RLock()
	defer m.lockList.RUnlock()
	return m.calls.List
}

func (m *feedbackRepoMock) GetAt(ctx context.Context, sourceID uuid.UUID, offset int) (*domain.FeedbackItem, error) {
	if m.GetAtFunc == nil {
		panic("feedbackRepoMock.GetAtFunc: method is nil but feedbackRepo.GetAt was just called")
	}
	m.lockGetAt.Lock()
	m.calls.GetAt = append(m.calls.GetAt, struct {
		SourceID uuid.UUID
		Offset   int
	}{sourceID, offset})
	m.lockGetAt.Unlock()
	return m.GetAtFunc(ctx, sourceID, offset)
}

func (m *feedbackRepoMock) GetAtCalls() []struct {
	SourceID uuid.UUID
	Offset   int
} {
	m.lockGetAt.RLock()
	defer m.lockGetAt.RUnlock()
	return m.calls.GetAt
}

func (m *feedbackRepoMock) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	if m.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	m.lockCreate.Lock()
	m.calls.Create = append(m.calls.Create, struct{ Fb *domain.Feedback }{fb})
	m.lockCreate.Unlock()
	return m.CreateFunc(ctx, fb)
}

func (m *feedbackRepoMock) CreateCalls() []struct{ Fb *domain.Feedback } {
	m.lockCreate.RLock()
	defer m.lockCreate.RUnlock()
	return m.calls.Create
}

func (m *feedbackRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("feedbackRepoMock.DeleteFunc: method is nil but feedbackRepo.Delete was just called")
	}
	m.lockDelete.Lock()
	m.calls.Delete = append(m.calls.Delete, struct{ ID uuid.UUID }{id})
	m.lockDelete.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *feedbackRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	m.lockDelete.RLock()
	defer m.lockDelete.RUnlock()
	return m.calls.Delete
}

// Ensure, that tokenRepoMock does implement tokenRepo.
var _ tokenRepo = &tokenRepoMock{}

// tokenRepoMock is a mock implementation of tokenRepo.
type tokenRepoMock struct {
	GetByTokenFunc func(ctx context.Context, token string) (*domain.Source, error)

	calls struct {
		GetByToken []struct{ Token string }
	}
	lockGetByToken sync.RWMutex
}

func (m *tokenRepoMock) GetByToken(ctx context.Context, token string) (*domain.Source, error) {
	if m.GetByTokenFunc == nil {
		panic("tokenRepoMock.GetByTokenFunc: method is nil but tokenRepo.GetByToken was just called")
	}
	m.lockGetByToken.Lock()
	m.calls.GetByToken = append(m.calls.GetByToken, struct{ Token string }{token})
	m.lockGetByToken.Unlock()
	return m.GetByTokenFunc(ctx, token)
}

func (m *tokenRepoMock) GetByTokenCalls() []struct{ Token string } {
	m.lockGetByToken.RLock()
	defer m.lockGetByToken.RUnlock()
	return m.calls.GetByToken
}

// Ensure, that authorizerMock does implement authorizer.
var _ authorizer = &authorizerMock{}

// authorizerMock is a mock implementation of authorizer.
type authorizerMock struct {
	AuthorizeFunc       func(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error)
	AuthorizeSourceFunc func(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)
	SourceChainFunc     func(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error)

	calls struct {
		Authorize []struct {
			UserID string
			Kind   domain.EntityKind
			ID     uuid.UUID
		}
		AuthorizeSource []struct {
			UserID   string
			SourceID uuid.UUID
		}
		SourceChain []struct{ SourceID uuid.UUID }
	}
	lockAuthorize       sync.RWMutex
	lockAuthorizeSource sync.RWMutex
	lockSourceChain     sync.RWMutex
}

func (m *authorizerMock) Authorize(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error) {
	if m.AuthorizeFunc == nil {
		panic("authorizerMock.AuthorizeFunc: method is nil but authorizer.Authorize was just called")
	}
	m.lockAuthorize.Lock()
	m.calls.Authorize = append(m.calls.Authorize, struct {
		UserID string
		Kind   domain.EntityKind
		ID     uuid.UUID
	}{userID, kind, id})
	m.lockAuthorize.Unlock()
	return m.AuthorizeFunc(ctx, userID, kind, id)
}

func (m *authorizerMock) AuthorizeCalls() []struct {
	UserID string
	Kind   domain.EntityKind
	ID     uuid.UUID
} {
	m.lockAuthorize.RLock()
	defer m.lockAuthorize.RUnlock()
	return m.calls.Authorize
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

func (m *authorizerMock) SourceChain(ctx context.Context, sourceID uuid.UUID) (domain.OwnerChain, error) {
	if m.SourceChainFunc == nil {
		panic("authorizerMock.SourceChainFunc: method is nil but authorizer.SourceChain was just called")
	}
	m.lockSourceChain.Lock()
	m.calls.SourceChain = append(m.calls.SourceChain, struct{ SourceID uuid.UUID }{sourceID})
	m.lockSourceChain.Unlock()
	return m.SourceChainFunc(ctx, sourceID)
}

func (m *authorizerMock) SourceChainCalls() []struct{ SourceID uuid.UUID } {
	m.lockSourceChain.RLock()
	defer m.lockSourceChain.RUnlock()
	return m.calls.SourceChain
}

// Ensure, that txManagerMock does implement txManager.
var _ txManager = &txManagerMock{}

// txManagerMock is a mock implementation of txManager.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	m.lockRunInTx.Lock()
	m.calls.RunInTx = append(m.calls.RunInTx, struct{}{})
	m.lockRunInTx.Unlock()
	return m.RunInTxFunc(ctx, fn)
}

func (m *txManagerMock) RunInTxCalls() []struct{} {
	m.lockRunInTx.RLock()
	defer m.lockRunInTx.RUnlock()
	return m.calls.RunInTx
}
