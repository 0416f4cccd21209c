package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/importer"
)

const uploadField = "file"

type importService interface {
	Import(ctx context.Context, input importer.ImportInput) (*importer.ImportResult, error)
	CheckDuplicates(ctx context.Context, r io.Reader) (*importer.DuplicateReport, error)
	GetJob(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	ListJobs(ctx context.Context, limit int) ([]domain.ImportJob, error)
}

// ImportHandler serves CSV import endpoints.
type ImportHandler struct {
	svc      importService
	log      *slog.Logger
	maxBytes int64
}

// NewImportHandler creates an ImportHandler. Uploads larger than maxBytes
// are rejected.
func NewImportHandler(svc importService, maxBytes int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, log: logger.With("handler", "import"), maxBytes: maxBytes}
}

// Import handles POST /api/import. The CSV comes as the multipart field
// "file"; form fields duplicateAction, databaseAction and enrich tune the run.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	input := importer.ImportInput{
		Filename:        header.Filename,
		Reader:          file,
		DuplicateAction: domain.DuplicateAction(r.FormValue("duplicateAction")),
		DatabaseAction:  domain.DatabaseAction(r.FormValue("databaseAction")),
	}
	if raw := r.FormValue("enrich"); raw != "" {
		enrich, err := strconv.ParseBool(raw)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("enrich", "must be true or false"))
			return
		}
		input.Enrich = enrich
	}

	result, err := h.svc.Import(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toImportResultResponse(*result))
}

type duplicateReportResponse struct {
	Duplicates []string `json:"duplicates"`
	Total      int      `json:"total"`
}

// CheckDuplicates handles POST /api/import/duplicates.
func (h *ImportHandler) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	file, _, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	report, err := h.svc.CheckDuplicates(r.Context(), file)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, duplicateReportResponse{Duplicates: report.Duplicates, Total: report.Total})
}

// GetJob handles GET /api/import/{id}.
func (h *ImportHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	job, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toImportJobResponse(*job))
}

// ListJobs handles GET /api/import.
func (h *ImportHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	jobs, err := h.svc.ListJobs(r.Context(), limit)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]importJobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toImportJobResponse(j)
	}
	writeJSON(w, http.StatusOK, resp)
}

// upload extracts the uploaded file, writing the error response itself
// when the request is unusable.
func (h *ImportHandler) upload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "upload exceeds the size limit")
			return nil, nil, false
		}
		writeServiceError(h.log, w, r, domain.NewValidationError("body", "must be multipart/form-data"))
		return nil, nil, false
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeServiceError(h.log, w, r, domain.NewValidationError(uploadField, "required"))
		return nil, nil, false
	}
	return file, header, true
}
