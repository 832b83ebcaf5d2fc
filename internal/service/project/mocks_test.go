package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Ensure, that projectRepoMock does implement projectRepo.
var _ projectRepo = &projectRepoMock{}

// projectRepoMock is a mock implementation of projectRepo.
type projectRepoMock struct {
	CreateFunc     func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]domain.Project, error)

	calls struct {
		Create     []struct{ P *domain.Project }
		GetByID    []struct{ ID uuid.UUID }
		ListByUser []struct{ UserID string }
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
}

func (m *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if m.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	m.lockCreate.Lock()
	m.calls.Create = append(m.calls.Create, struct{ P *domain.Project }{p})
	m.lockCreate.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *projectRepoMock) CreateCalls() []struct{ P *domain.Project } {
	m.lockCreate.RLock()
	defer m.lockCreate.RUnlock()
	return m.calls.Create
}

func (m *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	m.lockGetByID.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.lockGetByID.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *projectRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	m.lockGetByID.RLock()
	defer m.lockGetByID.RUnlock()
	return m.calls.GetByID
}

func (m *projectRepoMock) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	if m.ListByUserFunc == nil {
		panic("projectRepoMock.ListByUserFunc: method is nil but projectRepo.ListByUser was just called")
	}
	m.lockListByUser.Lock()
	m.calls.ListByUser = append(m.calls.ListByUser, struct{ UserID string }{userID})
	m.lockListByUser.Unlock()
	return m.ListByUserFunc(ctx, userID)
}

func (m *projectRepoMock) ListByUserCalls() []struct{ UserID string } {
	m.lockListByUser.RLock()
	defer m.lockListByUser.RUnlock()
	return m.calls.ListByUser
}
