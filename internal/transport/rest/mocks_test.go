package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
	"github.com/heartmarshall/loopback-backend/internal/service/analytics"
	"github.com/heartmarshall/loopback-backend/internal/service/feedback"
	"github.com/heartmarshall/loopback-backend/internal/service/project"
	"github.com/heartmarshall/loopback-backend/internal/service/source"
)

var (
	_ projectService   = &projectServiceMock{}
	_ sourceService    = &sourceServiceMock{}
	_ feedbackService  = &feedbackServiceMock{}
	_ analyticsService = &analyticsServiceMock{}
)

type projectServiceMock struct {
	ListProjectsFunc  func(ctx context.Context, userID string) ([]domain.Project, error)
	GetProjectFunc    func(ctx context.Context, userID string, projectID uuid.UUID) (*domain.Project, error)
	CreateProjectFunc func(ctx context.Context, userID string, input project.CreateProjectInput) (*domain.Project, error)
}

func (m *projectServiceMock) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	if m.ListProjectsFunc == nil {
		panic("projectServiceMock.ListProjectsFunc: method is nil but projectService.ListProjects was just called")
	}
	return m.ListProjectsFunc(ctx, userID)
}

func (m *projectServiceMock) GetProject(ctx context.Context, userID string, projectID uuid.UUID) (*domain.Project, error) {
	if m.GetProjectFunc == nil {
		panic("projectServiceMock.GetProjectFunc: method is nil but projectService.GetProject was just called")
	}
	return m.GetProjectFunc(ctx, userID, projectID)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, userID string, input project.CreateProjectInput) (*domain.Project, error) {
	if m.CreateProjectFunc == nil {
		panic("projectServiceMock.CreateProjectFunc: method is nil but projectService.CreateProject was just called")
	}
	return m.CreateProjectFunc(ctx, userID, input)
}

type sourceServiceMock struct {
	ListSourcesFunc     func(ctx context.Context, userID string, projectID uuid.UUID) ([]domain.Source, error)
	GetSourceFunc       func(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error)
	CreateSourceFunc    func(ctx context.Context, userID string, input source.CreateSourceInput) (*domain.Source, error)
	RegenerateTokenFunc func(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error)
}

func (m *sourceServiceMock) ListSources(ctx context.Context, userID string, projectID uuid.UUID) ([]domain.Source, error) {
	if m.ListSourcesFunc == nil {
		panic("sourceServiceMock.ListSourcesFunc: method is nil but sourceService.ListSources was just called")
	}
	return m.ListSourcesFunc(ctx, userID, projectID)
}

func (m *sourceServiceMock) GetSource(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error) {
	if m.GetSourceFunc == nil {
		panic("sourceServiceMock.GetSourceFunc: method is nil but sourceService.GetSource was just called")
	}
	return m.GetSourceFunc(ctx, userID, sourceID)
}

func (m *sourceServiceMock) CreateSource(ctx context.Context, userID string, input source.CreateSourceInput) (*domain.Source, error) {
	if m.CreateSourceFunc == nil {
		panic("sourceServiceMock.CreateSourceFunc: method is nil but sourceService.CreateSource was just called")
	}
	return m.CreateSourceFunc(ctx, userID, input)
}

func (m *sourceServiceMock) RegenerateToken(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error) {
	if m.RegenerateTokenFunc == nil {
		panic("sourceServiceMock.RegenerateTokenFunc: method is nil but sourceService.RegenerateToken was just called")
	}
	return m.RegenerateTokenFunc(ctx, userID, sourceID)
}

type feedbackServiceMock struct {
	ListFeedbackFunc   func(ctx context.Context, userID string, input feedback.ListFeedbackInput) (*domain.FeedbackPage, error)
	DeleteFeedbackFunc func(ctx context.Context, userID string, feedbackID uuid.UUID) error
	SubmitFunc         func(ctx context.Context, token string, input feedback.SubmitInput) (*domain.Feedback, error)

	calls struct {
		ListFeedback []struct {
			UserID string
			Input  feedback.ListFeedbackInput
		}
	}
	lockListFeedback sync.RWMutex
}

func (m *feedbackServiceMock) ListFeedback(ctx context.Context, userID string, input feedback.ListFeedbackInput) (*domain.FeedbackPage, error) {
	if m.ListFeedbackFunc == nil {
		panic("feedbackServiceMock.ListFeedbackFunc: method is nil but feedbackService.ListFeedback was just called")
	}
	m.lockListFeedback.Lock()
	m.calls.ListFeedback = append(m.calls.ListFeedback, struct {
		UserID string
		Input  feedback.ListFeedbackInput
	}{userID, input})
	m.lockListFeedback.Unlock()
	return m.ListFeedbackFunc(ctx, userID, input)
}

func (m *feedbackServiceMock) ListFeedbackCalls() []struct {
	UserID string
	Input  feedback.ListFeedbackInput
} {
	m.lockListFeedback.RLock()
	defer m.lockListFeedback.RUnlock()
	return m.calls.ListFeedback
}

func (m *feedbackServiceMock) DeleteFeedback(ctx context.Context, userID string, feedbackID uuid.UUID) error {
	if m.DeleteFeedbackFunc == nil {
		panic("feedbackServiceMock.DeleteFeedbackFunc: method is nil but feedbackService.DeleteFeedback was just called")
	}
	return m.DeleteFeedbackFunc(ctx, userID, feedbackID)
}

func (m *feedbackServiceMock) Submit(ctx context.Context, token string, input feedback.SubmitInput) (*domain.Feedback, error) {
	if m.SubmitFunc == nil {
		panic("feedbackServiceMock.SubmitFunc: method is nil but feedbackService.Submit was just called")
	}
	return m.SubmitFunc(ctx, token, input)
}

type analyticsServiceMock struct {
	GetStatsFunc func(ctx context.Context, userID string, input analytics.GetStatsInput) (*domain.AnalyticsStats, error)
}

func (m *analyticsServiceMock) GetStats(ctx context.Context, userID string, input analytics.GetStatsInput) (*domain.AnalyticsStats, error) {
	if m.GetStatsFunc == nil {
		panic("analyticsServiceMock.GetStatsFunc: method is nil but analyticsService.GetStats was just called")
	}
	return m.GetStatsFunc(ctx, userID, input)
}
