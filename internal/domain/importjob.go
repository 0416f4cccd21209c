package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob tracks one CSV import run.
type ImportJob struct {
	ID             uuid.UUID
	Filename       string
	TotalWords     int
	ProcessedWords int
	Status         ImportJobStatus
	Errors         []ImportRowError
	StartedAt      time.Time
	EndedAt        *time.Time
}

// ImportRowError describes a problem with one CSV row. Row is 1-based and
// counts the header line, so the first data row is 2.
type ImportRowError struct {
	Row     int
	Message string
}

// NewImportJob builds a pending job.
func NewImportJob(filename string, totalWords int, now time.Time) ImportJob {
	return ImportJob{
		ID:         uuid.New(),
		Filename:   filename,
		TotalWords: totalWords,
		Status:     ImportJobPending,
		Errors:     []ImportRowError{},
		StartedAt:  now,
	}
}

// ImportRow is one accepted data row of an import file.
type ImportRow struct {
	Row          int
	Lemma        string
	Phonetic     string
	AudioURL     string
	PartOfSpeech string
	Definition   string
}

// ParsedImport is the outcome of reading an import file. Rows holds the
// accepted rows in file order, deduplicated case-insensitively; Duplicates
// lists the lemmas that appeared more than once.
type ParsedImport struct {
	Rows       []ImportRow
	Errors     []ImportRowError
	Duplicates []string
}
