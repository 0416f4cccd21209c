package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word is a single entry of the vocabulary library together with its
// learning state.
type Word struct {
	ID               uuid.UUID
	Lemma            string
	PartOfSpeech     string
	Phonetics        []string
	AudioURLs        []string
	DefinitionEn     string
	DefinitionLocal  string
	Examples         []string
	Synonyms         []string
	Antonyms         []string
	Status           WordStatus
	NeedsReview      bool
	LastStudiedAt    *time.Time
	ReviewDueAt      *time.Time
	Notes            string
	Source           WordSource
	InfoCompleteness InfoCompleteness
	Tags             []uuid.UUID
	SetIDs           []uuid.UUID
}

// NewWord builds an unlearned word with a fresh identity.
func NewWord(lemma string, source WordSource) Word {
	return Word{
		ID:               uuid.New(),
		Lemma:            strings.TrimSpace(lemma),
		Phonetics:        []string{},
		AudioURLs:        []string{},
		Examples:         []string{},
		Synonyms:         []string{},
		Antonyms:         []string{},
		Status:           WordStatusUnlearned,
		Source:           source,
		InfoCompleteness: InfoMissingDefinition,
		Tags:             []uuid.UUID{},
		SetIDs:           []uuid.UUID{},
	}
}

// Validate checks the record invariants and collects all errors.
func (w *Word) Validate() error {
	var errs []FieldError

	if w.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(w.Lemma) == "" {
		errs = append(errs, FieldError{Field: "lemma", Message: "required"})
	}
	if !w.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be unlearned, learning or mastered"})
	}
	if !w.Source.IsValid() {
		errs = append(errs, FieldError{Field: "source", Message: "must be imported or manual"})
	}
	if !w.InfoCompleteness.IsValid() {
		errs = append(errs, FieldError{Field: "info_completeness", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result without
// touching the original record.
func (w Word) Clone() Word {
	c := w
	c.Phonetics = slices.Clone(w.Phonetics)
	c.AudioURLs = slices.Clone(w.AudioURLs)
	c.Examples = slices.Clone(w.Examples)
	c.Synonyms = slices.Clone(w.Synonyms)
	c.Antonyms = slices.Clone(w.Antonyms)
	c.Tags = slices.Clone(w.Tags)
	c.SetIDs = slices.Clone(w.SetIDs)
	if w.LastStudiedAt != nil {
		t := *w.LastStudiedAt
		c.LastStudiedAt = &t
	}
	if w.ReviewDueAt != nil {
		t := *w.ReviewDueAt
		c.ReviewDueAt = &t
	}
	return c
}

// ComputeCompleteness derives the completeness marker from the lexical fields.
func ComputeCompleteness(w Word) InfoCompleteness {
	hasDefinition := strings.TrimSpace(w.DefinitionLocal) != "" || strings.TrimSpace(w.DefinitionEn) != ""
	switch {
	case !hasDefinition:
		return InfoMissingDefinition
	case len(w.AudioURLs) == 0:
		return InfoMissingAudio
	default:
		return InfoComplete
	}
}

// WordStatusCounts holds the number of words per status.
type WordStatusCounts struct {
	Unlearned int
	Learning  int
	Mastered  int
}

// Total returns the number of words across all statuses.
func (c WordStatusCounts) Total() int {
	return c.Unlearned + c.Learning + c.Mastered
}

// WordPage is one page of words in primary-key order.
type WordPage struct {
	Items   []Word
	Total   int
	HasMore bool
}
