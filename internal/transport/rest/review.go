package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/review"
)

type reviewService interface {
	RecordReviewOutcome(ctx context.Context, input review.RecordOutcomeInput) (*domain.Word, error)
	GetDueWords(ctx context.Context, input review.GetDueInput) ([]domain.Word, error)
	GetDueCount(ctx context.Context) (int, error)
}

// ReviewHandler serves spaced-repetition review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

// Due handles GET /api/review/due.
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	words, err := h.svc.GetDueWords(r.Context(), review.GetDueInput{Limit: limit})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponses(words))
}

type countResponse struct {
	Count int `json:"count"`
}

// DueCount handles GET /api/review/due/count.
func (h *ReviewHandler) DueCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.GetDueCount(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

type outcomeRequest struct {
	WordID    string  `json:"wordId"`
	Success   bool    `json:"success"`
	SessionID *string `json:"sessionId"`
}

// Outcome handles POST /api/review/outcome.
func (h *ReviewHandler) Outcome(w http.ResponseWriter, r *http.Request) {
	var req outcomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeServiceError(h.log, w, r, domain.NewValidationError("word_id", "must be a UUID"))
		return
	}
	input := review.RecordOutcomeInput{WordID: wordID, Success: req.Success}
	if req.SessionID != nil {
		sid, err := uuid.Parse(*req.SessionID)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("session_id", "must be a UUID"))
			return
		}
		input.SessionID = &sid
	}

	word, err := h.svc.RecordReviewOutcome(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}
