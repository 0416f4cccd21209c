package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/session"
)

type sessionService interface {
	Start(ctx context.Context, input session.StartInput) (*domain.LearningSession, error)
	End(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error)
	AppendAction(ctx context.Context, id uuid.UUID, input session.AppendActionInput) (*domain.SessionAction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error)
	ListRecent(ctx context.Context, limit int) ([]domain.LearningSession, error)
}

// SessionHandler serves learning session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

type startSessionRequest struct {
	Type    string   `json:"type"`
	WordIDs []string `json:"wordIds"`
}

// Start handles POST /api/sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	ids, err := parseIDs("word_ids", req.WordIDs)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Start(r.Context(), session.StartInput{Type: domain.SessionType(req.Type), WordIDs: ids})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(*s))
}

// List handles GET /api/sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	sessions, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = toSessionResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.Get)
}

// End handles POST /api/sessions/{id}/end.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.End)
}

type actionRequest struct {
	Kind   string  `json:"kind"`
	WordID *string `json:"wordId"`
}

// AppendAction handles POST /api/sessions/{id}/actions.
func (h *SessionHandler) AppendAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req actionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	input := session.AppendActionInput{Kind: domain.ActionKind(req.Kind)}
	if req.WordID != nil {
		wid, err := uuid.Parse(*req.WordID)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("word_id", "must be a UUID"))
			return
		}
		input.WordID = &wid
	}

	action, err := h.svc.AppendAction(r.Context(), id, input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionResponse(*action))
}

func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.LearningSession, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	s, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(*s))
}
