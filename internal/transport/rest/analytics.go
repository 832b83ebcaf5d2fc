package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/loopback-backend/internal/domain"
	"github.com/heartmarshall/loopback-backend/internal/service/analytics"
)

type analyticsService interface {
	GetStats(ctx context.Context, userID string, input analytics.GetStatsInput) (*domain.AnalyticsStats, error)
}

// AnalyticsHandler serves dashboard statistics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Stats handles GET /analytics?projectId=&sourceId=.
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sourceID, err := queryID(r, "sourceId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.GetStats(r.Context(), principal(r), analytics.GetStatsInput{
		ProjectID: projectID,
		SourceID:  sourceID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
