package rest

import (
	"net/http"

	"github.com/heartmarshall/loopback-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Project   *ProjectHandler
	Source    *SourceHandler
	Feedback  *FeedbackHandler
	Analytics *AnalyticsHandler

	// Metrics serves /metrics; nil leaves the route unmounted.
	Metrics http.Handler
	// IngestLimit wraps the public ingestion route; nil applies no limit.
	IngestLimit middleware.Middleware
}

// NewRouter mounts all routes on a ServeMux. Cross-cutting middleware
// (recovery, request id, logging, auth) is applied by the caller around
// the returned handler.
func NewRouter(h Handlers, m *Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, m.instrument(pattern, fn))
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	handle("GET /projects", h.Project.List)
	handle("POST /projects", h.Project.Create)
	handle("GET /projects/{id}", h.Project.Get)
	handle("GET /projects/{id}/sources", h.Source.List)
	handle("POST /projects/{id}/sources", h.Source.Create)

	handle("GET /sources/{id}", h.Source.Get)
	handle("POST /sources/{id}/token", h.Source.RegenerateToken)
	handle("GET /sources/{id}/feedback", h.Feedback.List)

	handle("DELETE /feedback/{id}", h.Feedback.Delete)
	handle("GET /analytics", h.Analytics.Stats)

	var ingest http.Handler = http.HandlerFunc(h.Feedback.Submit)
	if h.IngestLimit != nil {
		ingest = h.IngestLimit(ingest)
	}
	mux.Handle("POST /ingest/{token}", m.instrument("POST /ingest/{token}", ingest))

	return mux
}
