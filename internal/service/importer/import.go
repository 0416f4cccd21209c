package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var phoneticBrackets = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")

// ---------------------------------------------------------------------------
// Import
// ---------------------------------------------------------------------------

// Import parses a CSV file and writes its words to the library. Row level
// problems are recorded on the job and do not stop the run; a storage
// failure marks the job failed and is returned.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Enrich && s.enricher == nil {
		return nil, domain.NewValidationError("enrich", "dictionary enrichment is not available")
	}

	parsed, err := s.parser.Parse(input.Reader)
	if err != nil {
		return nil, err
	}

	job := domain.NewImportJob(input.Filename, len(parsed.Rows), s.clock.Now().UTC())
	job.Errors = append(job.Errors, parsed.Errors...)
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create import job: %w", err)
	}

	job.Status = domain.ImportJobRunning
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("start import job: %w", err)
	}

	s.log.InfoContext(ctx, "import started",
		slog.String("job_id", job.ID.String()),
		slog.String("filename", job.Filename),
		slog.Int("rows", len(parsed.Rows)),
		slog.Int("parse_errors", len(parsed.Errors)),
	)

	result, err := s.run(ctx, &job, parsed.Rows, input)
	if err != nil {
		s.fail(ctx, &job, err)
		return nil, err
	}

	s.log.InfoContext(ctx, "import completed",
		slog.String("job_id", job.ID.String()),
		slog.Int("success", result.SuccessCount),
		slog.Int("errors", result.ErrorCount),
		slog.Int("duplicates", result.DuplicateCount),
		slog.Int("skipped", result.SkippedCount),
	)
	return result, nil
}

// planned is the write decided for one row.
type planned struct {
	row      domain.ImportRow
	word     domain.Word
	existing bool
}

func (s *Service) run(ctx context.Context, job *domain.ImportJob, rows []domain.ImportRow, input ImportInput) (*ImportResult, error) {
	if input.DatabaseAction == domain.DatabaseClear {
		n, err := s.words.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear words: %w", err)
		}
		s.log.InfoContext(ctx, "library cleared before import", slog.Int("deleted", n))
	}

	all, err := s.words.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing words: %w", err)
	}
	existing := make(map[string]domain.Word, len(all))
	for _, w := range all {
		existing[domain.NormalizeText(w.Lemma)] = w
	}

	result := &ImportResult{}

	// Decide what to do with each row before writing anything, so that
	// enrichment can run as one batch.
	plan := make([]*planned, len(rows))
	var toEnrich []domain.Word
	for i, row := range rows {
		word := convertRow(row)
		old, dup := existing[domain.NormalizeText(row.Lemma)]
		if dup {
			result.DuplicateCount++
			if input.DuplicateAction == domain.DuplicateSkip {
				result.SkippedCount++
				job.Errors = append(job.Errors, domain.ImportRowError{
					Row:     row.Row,
					Message: fmt.Sprintf("word %q already exists, skipped", row.Lemma),
				})
				continue
			}
			word.ID = old.ID
			word.Tags = old.Tags
			word.SetIDs = old.SetIDs
		}
		plan[i] = &planned{row: row, word: word, existing: dup}
		toEnrich = append(toEnrich, word)
	}

	if input.Enrich && len(toEnrich) > 0 {
		stats, err := s.enricher.Enrich(ctx, toEnrich)
		if err != nil {
			return nil, fmt.Errorf("enrich words: %w", err)
		}
		result.Enrichment = &stats

		k := 0
		for _, p := range plan {
			if p != nil {
				p.word = toEnrich[k]
				k++
			}
		}
	}

	every := s.cfg.ProgressEvery
	if every <= 0 {
		every = 10
	}

	for i, p := range plan {
		job.ProcessedWords = i + 1

		if p != nil {
			if err := s.write(ctx, p); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				result.ErrorCount++
				job.Errors = append(job.Errors, domain.ImportRowError{
					Row:     p.row.Row,
					Message: fmt.Sprintf("import word %q: %v", p.row.Lemma, err),
				})
				s.log.ErrorContext(ctx, "import word failed",
					slog.String("job_id", job.ID.String()),
					slog.Int("row", p.row.Row),
					slog.String("error", err.Error()),
				)
			} else {
				result.SuccessCount++
			}
		}

		if (i+1)%every == 0 {
			if err := s.jobs.Update(ctx, *job); err != nil {
				return nil, fmt.Errorf("update import progress: %w", err)
			}
		}
	}

	now := s.clock.Now().UTC()
	job.Status = domain.ImportJobCompleted
	job.EndedAt = &now
	if err := s.jobs.Update(ctx, *job); err != nil {
		return nil, fmt.Errorf("complete import job: %w", err)
	}

	result.Job = *job
	return result, nil
}

func (s *Service) write(ctx context.Context, p *planned) error {
	if p.existing {
		return s.words.Update(ctx, p.word)
	}
	_, err := s.words.Create(ctx, p.word)
	return err
}

// fail marks the job failed. The job update is best effort: the original
// error is what the caller sees.
func (s *Service) fail(ctx context.Context, job *domain.ImportJob, cause error) {
	now := s.clock.Now().UTC()
	job.Status = domain.ImportJobFailed
	job.EndedAt = &now

	s.log.ErrorContext(ctx, "import failed",
		slog.String("job_id", job.ID.String()),
		slog.String("error", cause.Error()),
	)

	if err := s.jobs.Update(context.WithoutCancel(ctx), *job); err != nil {
		s.log.ErrorContext(ctx, "mark import job failed",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// convertRow builds an imported word from a CSV row. The definition column
// holds the learner's own-language definition.
func convertRow(row domain.ImportRow) domain.Word {
	w := domain.NewWord(row.Lemma, domain.WordSourceImported)

	if ph := strings.TrimSpace(phoneticBrackets.Replace(row.Phonetic)); ph != "" {
		w.Phonetics = []string{ph}
	}
	if row.AudioURL != "" {
		w.AudioURLs = []string{row.AudioURL}
	}
	w.PartOfSpeech = row.PartOfSpeech
	w.DefinitionLocal = row.Definition
	w.InfoCompleteness = domain.ComputeCompleteness(w)
	return w
}

// ---------------------------------------------------------------------------
// CheckDuplicates
// ---------------------------------------------------------------------------

// CheckDuplicates parses a file without importing it and reports which
// lemmas repeat within the file or already exist in the library.
func (s *Service) CheckDuplicates(ctx context.Context, r io.Reader) (*DuplicateReport, error) {
	if r == nil {
		return nil, domain.NewValidationError("file", "required")
	}

	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	all, err := s.words.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing words: %w", err)
	}
	existing := make(map[string]struct{}, len(all))
	for _, w := range all {
		existing[domain.NormalizeText(w.Lemma)] = struct{}{}
	}

	report := &DuplicateReport{Duplicates: []string{}, Total: len(parsed.Rows)}
	seen := make(map[string]struct{})
	add := func(lemma string) {
		key := domain.NormalizeText(lemma)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		report.Duplicates = append(report.Duplicates, lemma)
	}

	for _, row := range parsed.Rows {
		if _, ok := existing[domain.NormalizeText(row.Lemma)]; ok {
			add(row.Lemma)
		}
	}
	for _, lemma := range parsed.Duplicates {
		add(lemma)
	}
	return report, nil
}

// ---------------------------------------------------------------------------
// Jobs
// ---------------------------------------------------------------------------

// GetJob returns an import job.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}
	if job == nil {
		return nil, fmt.Errorf("import job %s: %w", id, domain.ErrNotFound)
	}
	return job, nil
}

// ListJobs returns the most recent import jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	if limit <= 0 {
		limit = defaultJobsLimit
	}
	if limit > maxJobsLimit {
		limit = maxJobsLimit
	}
	jobs, err := s.jobs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list import jobs: %w", err)
	}
	return jobs, nil
}
