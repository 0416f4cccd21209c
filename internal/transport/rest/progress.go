package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordbook/internal/domain"
)

type progressService interface {
	Get(ctx context.Context) (*domain.UserProgress, error)
	Refresh(ctx context.Context) (*domain.UserProgress, error)
	LearningTrends(ctx context.Context, days int) ([]domain.DayTrend, error)
	Heatmap(ctx context.Context, days int) (map[string]int, error)
	DailyActivity(ctx context.Context, date string) (*domain.DayActivity, error)
	QuizScoreTrends(ctx context.Context, days int) ([]domain.DayScore, error)
}

// ProgressHandler serves progress and statistics endpoints.
type ProgressHandler struct {
	svc         progressService
	log         *slog.Logger
	heatmapDays int
}

// NewProgressHandler creates a ProgressHandler. heatmapDays is the default
// window of /api/stats/heatmap.
func NewProgressHandler(svc progressService, heatmapDays int, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress"), heatmapDays: heatmapDays}
}

// Get handles GET /api/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeProgress(w, r, h.svc.Get)
}

// Refresh handles POST /api/progress/refresh.
func (h *ProgressHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.writeProgress(w, r, h.svc.Refresh)
}

func (h *ProgressHandler) writeProgress(w http.ResponseWriter, r *http.Request, fn func(context.Context) (*domain.UserProgress, error)) {
	p, err := fn(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}

type trendResponse struct {
	Date      string `json:"date"`
	Minutes   int    `json:"minutes"`
	WordCount int    `json:"wordCount"`
}

// Trends handles GET /api/stats/trends?days=N.
func (h *ProgressHandler) Trends(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 7)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	trends, err := h.svc.LearningTrends(r.Context(), days)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]trendResponse, len(trends))
	for i, t := range trends {
		resp[i] = trendResponse{Date: t.Date, Minutes: t.Minutes, WordCount: t.WordCount}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Heatmap handles GET /api/stats/heatmap?days=N.
func (h *ProgressHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", h.heatmapDays)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	heatmap, err := h.svc.Heatmap(r.Context(), days)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, heatmap)
}

type dailyResponse struct {
	Date          string `json:"date"`
	Sessions      int    `json:"sessions"`
	Minutes       int    `json:"minutes"`
	WordsReviewed int    `json:"wordsReviewed"`
}

// Daily handles GET /api/stats/daily?date=YYYY-MM-DD.
func (h *ProgressHandler) Daily(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.DailyActivity(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dailyResponse{
		Date:          a.Date,
		Sessions:      a.Sessions,
		Minutes:       a.Minutes,
		WordsReviewed: a.WordsReviewed,
	})
}

type quizTrendResponse struct {
	Date    string `json:"date"`
	Quizzes int    `json:"quizzes"`
	Average int    `json:"average"`
}

// QuizTrends handles GET /api/stats/quizzes?days=N.
func (h *ProgressHandler) QuizTrends(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	scores, err := h.svc.QuizScoreTrends(r.Context(), days)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]quizTrendResponse, len(scores))
	for i, s := range scores {
		resp[i] = quizTrendResponse{Date: s.Date, Quizzes: s.Quizzes, Average: s.Average}
	}
	writeJSON(w, http.StatusOK, resp)
}
