package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
	"github.com/heartmarshall/loopback-backend/internal/service/feedback"
)

type feedbackService interface {
	ListFeedback(ctx context.Context, userID string, input feedback.ListFeedbackInput) (*domain.FeedbackPage, error)
	DeleteFeedback(ctx context.Context, userID string, feedbackID uuid.UUID) error
	Submit(ctx context.Context, token string, input feedback.SubmitInput) (*domain.Feedback, error)
}

// FeedbackHandler serves feedback listing, deletion and public ingestion.
type FeedbackHandler struct {
	svc         feedbackService
	ingestLimit int64
	log         *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler. ingestLimit bounds the
// public submission body in bytes.
func NewFeedbackHandler(svc feedbackService, ingestLimit int64, logger *slog.Logger) *FeedbackHandler {
	if ingestLimit <= 0 {
		ingestLimit = maxBodyBytes
	}
	return &FeedbackHandler{svc: svc, ingestLimit: ingestLimit, log: logger.With("handler", "feedback")}
}

type submitRequest struct {
	Rating   int             `json:"rating"`
	Message  string          `json:"message"`
	Metadata json.RawMessage `json:"metadata"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// List handles GET /sources/{id}/feedback?page=&limit=&q=.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListFeedback(r.Context(), principal(r), feedback.ListFeedbackInput{
		SourceID: sourceID,
		Page:     page,
		Limit:    limit,
		Query:    r.URL.Query().Get("q"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /feedback/{id}.
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteFeedback(r.Context(), principal(r), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Submit handles POST /ingest/{token}. It is public; the token identifies
// the source and nothing else.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(w, r, h.ingestLimit, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fb, err := h.svc.Submit(r.Context(), r.PathValue("token"), feedback.SubmitInput{
		Rating:   req.Rating,
		Message:  req.Message,
		Metadata: req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{ID: fb.ID.String()})
}
