package importer

import (
	"io"
	"strings"

	"github.com/heartmarshall/wordbook/internal/domain"
)

const (
	defaultJobsLimit = 20
	maxJobsLimit     = 100
)

// ImportInput holds the parameters of an import run.
type ImportInput struct {
	Filename        string
	Reader          io.Reader
	DuplicateAction domain.DuplicateAction
	DatabaseAction  domain.DatabaseAction
	Enrich          bool
}

// Validate checks all fields and collects all errors. Empty actions
// default to skip and append.
func (i *ImportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Filename) == "" {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "required"})
	} else if !strings.HasSuffix(strings.ToLower(i.Filename), ".csv") {
		errs = append(errs, domain.FieldError{Field: "filename", Message: "must be a .csv file"})
	}
	if i.Reader == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if i.DuplicateAction == "" {
		i.DuplicateAction = domain.DuplicateSkip
	}
	if !i.DuplicateAction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "duplicate_action", Message: "must be skip or overwrite"})
	}
	if i.DatabaseAction == "" {
		i.DatabaseAction = domain.DatabaseAppend
	}
	if !i.DatabaseAction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "database_action", Message: "must be append or clear"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportResult summarizes a finished import.
type ImportResult struct {
	Job            domain.ImportJob
	SuccessCount   int
	ErrorCount     int
	DuplicateCount int
	SkippedCount   int
	Enrichment     *domain.EnrichmentStats
}

// DuplicateReport lists lemmas of a file that repeat within the file or
// already exist in the library.
type DuplicateReport struct {
	Duplicates []string
	Total      int
}
