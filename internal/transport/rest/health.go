package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// probeTimeout bounds every dependency ping made by a probe.
const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// pinger is satisfied by *pgxpool.Pool and *cache.Store.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and full health probes.
type HealthHandler struct {
	db      pinger
	cache   pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is
// disabled. A failing cache degrades health but never readiness, because
// every operation falls back to the store.
func NewHealthHandler(db pinger, cache pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if comp := h.probe(ctx, h.db); comp.Status != statusOK {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Health pings every dependency concurrently and reports each with its
// latency. Overall status is "down" (503) when the database fails and
// "degraded" (200) when only the cache does.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	deps := map[string]pinger{"database": h.db}
	if h.cache != nil {
		deps["cache"] = h.cache
	}

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(deps))
		g          errgroup.Group
	)
	for name, p := range deps {
		g.Go(func() error {
			comp := h.probe(ctx, p)
			mu.Lock()
			components[name] = comp
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	overall, code := statusOK, http.StatusOK
	switch {
	case components["database"].Status != statusOK:
		overall, code = statusDown, http.StatusServiceUnavailable
	case h.cache != nil && components["cache"].Status != statusOK:
		overall = statusDegraded
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context, p pinger) CompStatus {
	start := h.now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown, Error: err.Error()}
	}
	return CompStatus{Status: statusOK, Latency: h.now().Sub(start).String()}
}
