package source

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Ensure, that sourceRepoMock does implement sourceRepo.
var _ sourceRepo = &sourceRepoMock{}

// sourceRepoMock is a mock implementation of sourceRepo.
type sourceRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.Source) (*domain.Source, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]domain.Source, error)
	UpdateTokenFunc   func(ctx context.Context, id uuid.UUID, token string) (*domain.Source, error)

	calls struct {
		Create        []struct{ S *domain.Source }
		GetByID       []struct{ ID uuid.UUID }
		ListByProject []struct{ ProjectID uuid.UUID }
		UpdateToken   []struct {
			ID    uuid.UUID
			Token string
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByProject sync.RWMutex
	lockUpdateToken   sync.RWMutex
}

func (m *sourceRepoMock) Create(ctx context.Context, s *domain.Source) (*domain.Source, error) {
	if m.CreateFunc == nil {
		panic("sourceRepoMock.CreateFunc: method is nil but sourceRepo.Create was just called")
	}
	m.lockCreate.Lock()
	m.calls.Create = append(m.calls.Create, struct{ S *domain.Source }{s})
	m.lockCreate.Unlock()
	return m.CreateFunc(ctx, s)
}

func (m *sourceRepoMock) CreateCalls() []struct{ S *domain.Source } {
	m.lockCreate.RLock()
	defer m.lockCreate.RUnlock()
	return m.calls.Create
}

func (m *sourceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	if m.GetByIDFunc == nil {
		panic("sourceRepoMock.GetByIDFunc: method is nil but sourceRepo.GetByID was just called")
	}
	m.lockGetByID.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.lockGetByID.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *sourceRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	m.lockGetByID.RLock()
	defer m.lockGetByID.RUnlock()
	return m.calls.GetByID
}

func (m *sourceRepoMock) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Source, error) {
	if m.ListByProjectFunc == nil {
		panic("sourceRepoMock.ListByProjectFunc: method is nil but sourceRepo.ListByProject was just called")
	}
	m.lockListByProject.Lock()
	m.calls.ListByProject = append(m.calls.ListByProject, struct{ ProjectID uuid.UUID }{projectID})
	m.lockListByProject.Unlock()
	return m.ListByProjectFunc(ctx, projectID)
}

func (m *sourceRepoMock) ListByProjectCalls() []struct{ ProjectID uuid.UUID } {
	m.lockListByProject.RLock()
	defer m.lockListByProject.RUnlock()
	return m.calls.ListByProject
}

func (m *sourceRepoMock) UpdateToken(ctx context.Context, id uuid.UUID, token string) (*domain.Source, error) {
	if m.UpdateTokenFunc == nil {
		panic("sourceRepoMock.UpdateTokenFunc: method is nil but sourceRepo.UpdateToken was just called")
	}
	m.lockUpdateToken.Lock()
	m.calls.UpdateToken = append(m.calls.UpdateToken, struct {
		ID    uuid.UUID
		Token string
	}{id, token})
	m.lockUpdateToken.Unlock()
	return m.UpdateTokenFunc(ctx, id, token)
}

func (m *sourceRepoMock) UpdateTokenCalls() []struct {
	ID    uuid.UUID
	Token string
} {
	m.lockUpdateToken.RLock()
	defer m.lockUpdateToken.RUnlock()
	return m.calls.UpdateToken
}

// Ensure, that authorizerMock does implement authorizer.
var _ authorizer = &authorizerMock{}

// authorizerMock is a mock implementation of authorizer.
type authorizerMock struct {
	AuthorizeFunc       func(ctx context.Context, userID string, kind domain.EntityKind, id uuid.UUID) (domain.OwnerChain, error)
	AuthorizeSourceFunc func(ctx context.Context, userID string, sourceID uuid.UUID) (domain.OwnerChain, error)

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
	}
	lockAuthorize       sync.RWMutex
	lockAuthorizeSource sync.RWMutex
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
