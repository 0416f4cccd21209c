package rest

import "net/http"

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Words    *WordHandler
	Review   *ReviewHandler
	Sessions *SessionHandler
	Progress *ProgressHandler
	Import   *ImportHandler
	Quizzes  *QuizHandler
}

// NewRouter registers every endpoint on a ServeMux. Middleware is applied
// by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("POST /api/words", h.Words.Create)
	mux.HandleFunc("GET /api/words/export", h.Words.Export)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)
	mux.HandleFunc("PUT /api/words/{id}", h.Words.Update)
	mux.HandleFunc("DELETE /api/words/{id}", h.Words.Delete)
	mux.HandleFunc("POST /api/words/{id}/mastered", h.Words.Mastered)
	mux.HandleFunc("POST /api/words/{id}/needs-review", h.Words.NeedsReview)
	mux.HandleFunc("PUT /api/words/{id}/status", h.Words.SetStatus)
	mux.HandleFunc("PUT /api/words/{id}/tags/{tagID}", h.Words.TagWord)
	mux.HandleFunc("DELETE /api/words/{id}/tags/{tagID}", h.Words.UntagWord)
	mux.HandleFunc("GET /api/words/{id}/notes", h.Words.ListNotes)
	mux.HandleFunc("POST /api/words/{id}/notes", h.Words.AddNote)

	mux.HandleFunc("GET /api/tags", h.Words.ListTags)
	mux.HandleFunc("POST /api/tags", h.Words.CreateTag)
	mux.HandleFunc("DELETE /api/tags/{id}", h.Words.DeleteTag)

	mux.HandleFunc("PUT /api/notes/{id}", h.Words.UpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", h.Words.DeleteNote)

	mux.HandleFunc("GET /api/review/due", h.Review.Due)
	mux.HandleFunc("GET /api/review/due/count", h.Review.DueCount)
	mux.HandleFunc("POST /api/review/outcome", h.Review.Outcome)

	mux.HandleFunc("GET /api/sessions", h.Sessions.List)
	mux.HandleFunc("POST /api/sessions", h.Sessions.Start)
	mux.HandleFunc("GET /api/sessions/{id}", h.Sessions.Get)
	mux.HandleFunc("POST /api/sessions/{id}/end", h.Sessions.End)
	mux.HandleFunc("POST /api/sessions/{id}/actions", h.Sessions.AppendAction)

	mux.HandleFunc("GET /api/progress", h.Progress.Get)
	mux.HandleFunc("POST /api/progress/refresh", h.Progress.Refresh)
	mux.HandleFunc("GET /api/stats/trends", h.Progress.Trends)
	mux.HandleFunc("GET /api/stats/heatmap", h.Progress.Heatmap)
	mux.HandleFunc("GET /api/stats/daily", h.Progress.Daily)
	mux.HandleFunc("GET /api/stats/quizzes", h.Progress.QuizTrends)

	mux.HandleFunc("GET /api/import", h.Import.ListJobs)
	mux.HandleFunc("POST /api/import", h.Import.Import)
	mux.HandleFunc("POST /api/import/duplicates", h.Import.CheckDuplicates)
	mux.HandleFunc("GET /api/import/{id}", h.Import.GetJob)

	mux.HandleFunc("POST /api/quizzes", h.Quizzes.Generate)
	mux.HandleFunc("GET /api/quizzes/{id}", h.Quizzes.Get)
	mux.HandleFunc("GET /api/quizzes/{id}/questions", h.Quizzes.Questions)
	mux.HandleFunc("POST /api/quizzes/{id}/score", h.Quizzes.Score)
	mux.HandleFunc("POST /api/questions/{id}/answer", h.Quizzes.Answer)

	return mux
}
