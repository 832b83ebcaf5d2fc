package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
	"github.com/heartmarshall/loopback-backend/internal/service/source"
)

type sourceService interface {
	ListSources(ctx context.Context, userID string, projectID uuid.UUID) ([]domain.Source, error)
	GetSource(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error)
	CreateSource(ctx context.Context, userID string, input source.CreateSourceInput) (*domain.Source, error)
	RegenerateToken(ctx context.Context, userID string, sourceID uuid.UUID) (*domain.Source, error)
}

// SourceHandler serves source endpoints.
type SourceHandler struct {
	svc sourceService
	log *slog.Logger
}

// NewSourceHandler creates a SourceHandler.
func NewSourceHandler(svc sourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{svc: svc, log: logger.With("handler", "source")}
}

type createSourceRequest struct {
	Name string `json:"name"`
}

// List handles GET /projects/{id}/sources.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sources, err := h.svc.ListSources(r.Context(), principal(r), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// Create handles POST /projects/{id}/sources.
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createSourceRequest
	if err := decodeBody(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.svc.CreateSource(r.Context(), principal(r), source.CreateSourceInput{ProjectID: projectID, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// Get handles GET /sources/{id}.
func (h *SourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.GetSource(r.Context(), principal(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// RegenerateToken handles POST /sources/{id}/token.
func (h *SourceHandler) RegenerateToken(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.RegenerateToken(r.Context(), principal(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
