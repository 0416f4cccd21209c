// Package importjob persists CSV import job state.
package importjob

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const table = "import_jobs"

var columns = []string{
	"id", "filename", "total_words", "processed_words", "status", "errors", "started_at", "ended_at",
}

// Repo provides import job persistence.
type Repo struct {
	db *store.DB
}

// New creates a new import job repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a job.
func (r *Repo) Create(ctx context.Context, j domain.ImportJob) error {
	errs, err := encodeErrors(j.Errors)
	if err != nil {
		return fmt.Errorf("import job %s: %w", j.ID, err)
	}

	query, args, err := r.db.Builder().
		Insert(table).
		Columns(columns...).
		Values(j.ID, j.Filename, j.TotalWords, j.ProcessedWords, string(j.Status), errs,
			store.NormalizeTime(j.StartedAt), store.NullTime(j.EndedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert import job: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "import job", j.ID)
	}
	return nil
}

// Update replaces the mutable job state: counters, status, errors and end time.
func (r *Repo) Update(ctx context.Context, j domain.ImportJob) error {
	errs, err := encodeErrors(j.Errors)
	if err != nil {
		return fmt.Errorf("import job %s: %w", j.ID, err)
	}

	query, args, err := r.db.Builder().
		Update(table).
		Set("total_words", j.TotalWords).
		Set("processed_words", j.ProcessedWords).
		Set("status", string(j.Status)).
		Set("errors", errs).
		Set("ended_at", store.NullTime(j.EndedAt)).
		Where(sq.Eq{"id": j.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update import job: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "import job", j.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, "import job", j.ID)
	}
	if n == 0 {
		return fmt.Errorf("import job %s: %w", j.ID, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns the job or nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	jobs, err := r.list(ctx, "import job", r.db.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	return &jobs[0], nil
}

// ListRecent returns the latest jobs, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	b := r.db.Builder().Select(columns...).From(table).OrderBy("started_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, "recent import jobs", b)
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.ImportJob, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	jobs := []domain.ImportJob{}
	for rows.Next() {
		var (
			j      domain.ImportJob
			status string
			errs   []byte
			ended  sql.NullTime
		)
		if err := rows.Scan(&j.ID, &j.Filename, &j.TotalWords, &j.ProcessedWords, &status, &errs, &j.StartedAt, &ended); err != nil {
			return nil, store.MapError(err, op, "")
		}
		j.Status = domain.ImportJobStatus(status)
		j.StartedAt = store.NormalizeTime(j.StartedAt)
		j.EndedAt = store.TimePtr(ended)
		j.Errors = []domain.ImportRowError{}
		if err := decodeErrors(errs, &j.Errors); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, j.ID, err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return jobs, nil
}

// rowError is the stored JSON shape of domain.ImportRowError.
type rowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func encodeErrors(errs []domain.ImportRowError) (string, error) {
	out := make([]rowError, len(errs))
	for i, e := range errs {
		out[i] = rowError{Row: e.Row, Message: e.Message}
	}
	return store.EncodeJSON(out)
}

func decodeErrors(raw []byte, dst *[]domain.ImportRowError) error {
	var stored []rowError
	if err := store.DecodeJSON(raw, &stored); err != nil {
		return err
	}
	for _, e := range stored {
		*dst = append(*dst, domain.ImportRowError{Row: e.Row, Message: e.Message})
	}
	return nil
}
