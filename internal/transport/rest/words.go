package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/dictionary"
)

const exportDisposition = `attachment; filename="wordbook.csv"`

// dictionaryService defines what WordHandler needs from the library.
type dictionaryService interface {
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, filter domain.WordFilter) (*dictionary.ListResult, error)
	UpdateWord(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error
	MarkMastered(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	MarkNeedsReview(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)

	CreateTag(ctx context.Context, input dictionary.CreateTagInput) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	TagWord(ctx context.Context, wordID, tagID uuid.UUID) (*domain.Word, error)
	UntagWord(ctx context.Context, wordID, tagID uuid.UUID) (*domain.Word, error)

	AddNote(ctx context.Context, wordID uuid.UUID, content string) (*domain.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error)
	ListNotes(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// WordHandler serves word, tag and note endpoints.
type WordHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc dictionaryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordRequest struct {
	Lemma           string   `json:"lemma"`
	PartOfSpeech    string   `json:"partOfSpeech"`
	Phonetics       []string `json:"phonetics"`
	AudioURLs       []string `json:"audioUrls"`
	DefinitionEn    string   `json:"definitionEn"`
	DefinitionLocal string   `json:"definitionLocal"`
	Examples        []string `json:"examples"`
	Synonyms        []string `json:"synonyms"`
	Antonyms        []string `json:"antonyms"`
	Notes           string   `json:"notes"`
	TagIDs          []string `json:"tagIds"`
	Status          string   `json:"status"`
	NeedsReview     bool     `json:"needsReview"`
}

func (req wordRequest) fields() dictionary.WordFields {
	return dictionary.WordFields{
		Lemma:           req.Lemma,
		PartOfSpeech:    req.PartOfSpeech,
		Phonetics:       req.Phonetics,
		AudioURLs:       req.AudioURLs,
		DefinitionEn:    req.DefinitionEn,
		DefinitionLocal: req.DefinitionLocal,
		Examples:        req.Examples,
		Synonyms:        req.Synonyms,
		Antonyms:        req.Antonyms,
		Notes:           req.Notes,
	}
}

type listWordsResponse struct {
	Words   []wordResponse `json:"words"`
	Total   int            `json:"total"`
	HasMore bool           `json:"hasMore"`
}

// List handles GET /api/words.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseWordFilter(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListWords(r.Context(), filter)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listWordsResponse{
		Words:   toWordResponses(result.Words),
		Total:   result.Total,
		HasMore: result.HasMore,
	})
}

func parseWordFilter(r *http.Request) (domain.WordFilter, error) {
	q := r.URL.Query()
	var filter domain.WordFilter

	if s := strings.TrimSpace(q.Get("search")); s != "" {
		filter.Search = &s
	}
	if s := q.Get("status"); s != "" {
		status := domain.WordStatus(s)
		filter.Status = &status
	}
	if s := q.Get("source"); s != "" {
		source := domain.WordSource(s)
		filter.Source = &source
	}
	if s := q.Get("tag"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, domain.NewValidationError("tag", "must be a UUID")
		}
		filter.TagID = &id
	}
	needsReview, err := queryBool(r, "needs_review")
	if err != nil {
		return filter, err
	}
	filter.NeedsReview = needsReview

	filter.SortBy = q.Get("sort_by")
	filter.SortOrder = q.Get("sort_order")

	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	tagIDs, err := parseIDs("tag_ids", req.TagIDs)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	word, err := h.svc.CreateWord(r.Context(), dictionary.CreateWordInput{
		WordFields: req.fields(),
		TagIDs:     tagIDs,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withWord(w, r, h.svc.GetWord)
}

// Update handles PUT /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req wordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	word, err := h.svc.UpdateWord(r.Context(), dictionary.UpdateWordInput{
		ID:          id,
		WordFields:  req.fields(),
		Status:      domain.WordStatus(req.Status),
		NeedsReview: req.NeedsReview,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Mastered handles POST /api/words/{id}/mastered.
func (h *WordHandler) Mastered(w http.ResponseWriter, r *http.Request) {
	h.withWord(w, r, h.svc.MarkMastered)
}

// NeedsReview handles POST /api/words/{id}/needs-review.
func (h *WordHandler) NeedsReview(w http.ResponseWriter, r *http.Request) {
	h.withWord(w, r, h.svc.MarkNeedsReview)
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PUT /api/words/{id}/status.
func (h *WordHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.withWord(w, r, func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
		return h.svc.SetStatus(ctx, id, domain.WordStatus(req.Status))
	})
}

// Export handles GET /api/words/export as a CSV download. The file is built
// in memory first so a failure still gets a JSON error response.
func (h *WordHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	n, err := h.svc.ExportCSV(r.Context(), &buf)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", exportDisposition)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WarnContext(r.Context(), "write export", slog.String("error", err.Error()))
		return
	}
	h.log.InfoContext(r.Context(), "words exported", slog.Int("words", n))
}

func (h *WordHandler) withWord(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Word, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	word, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}
