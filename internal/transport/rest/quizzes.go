package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/quiz"
)

type quizService interface {
	Generate(ctx context.Context, mode domain.QuizMode, wordIDs []uuid.UUID) (*domain.Quiz, error)
	SubmitAnswer(ctx context.Context, questionID uuid.UUID, answer string) (*domain.QuizQuestion, error)
	CalculateScore(ctx context.Context, quizID uuid.UUID) (*quiz.Score, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	Questions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error)
}

// QuizHandler serves quiz endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quizzes")}
}

type generateQuizRequest struct {
	Mode    string   `json:"mode"`
	WordIDs []string `json:"wordIds"`
}

// Generate handles POST /api/quizzes.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	ids, err := parseIDs("word_ids", req.WordIDs)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	q, err := h.svc.Generate(r.Context(), domain.QuizMode(req.Mode), ids)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuizResponse(*q))
}

// Get handles GET /api/quizzes/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResponse(*q))
}

// Questions handles GET /api/quizzes/{id}/questions.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	questions, err := h.svc.Questions(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]questionResponse, len(questions))
	for i, q := range questions {
		resp[i] = toQuestionResponse(q)
	}
	writeJSON(w, http.StatusOK, resp)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// Answer handles POST /api/questions/{id}/answer.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	q, err := h.svc.SubmitAnswer(r.Context(), id, req.Answer)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionResponse(*q))
}

// Score handles POST /api/quizzes/{id}/score.
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	score, err := h.svc.CalculateScore(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreResponse(*score))
}
