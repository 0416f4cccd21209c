package dictionary

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

const (
	maxLemmaLen      = 100
	maxTextLen       = 2000
	maxNotesLen      = 5000
	maxListItems     = 20
	maxTagNameLen    = 50
	defaultListLimit = 50
	maxListLimit     = 200
)

// WordFields holds the user-editable lexical fields of a word.
type WordFields struct {
	Lemma           string
	PartOfSpeech    string
	Phonetics       []string
	AudioURLs       []string
	DefinitionEn    string
	DefinitionLocal string
	Examples        []string
	Synonyms        []string
	Antonyms        []string
	Notes           string
}

func (f *WordFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	lemma := strings.TrimSpace(f.Lemma)
	if lemma == "" {
		errs = append(errs, domain.FieldError{Field: "lemma", Message: "required"})
	} else if len(lemma) > maxLemmaLen {
		errs = append(errs, domain.FieldError{Field: "lemma", Message: "too long (max 100)"})
	}
	if len(f.DefinitionEn) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "definition_en", Message: "too long (max 2000)"})
	}
	if len(f.DefinitionLocal) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "definition_local", Message: "too long (max 2000)"})
	}
	if len(f.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long (max 5000)"})
	}

	lists := []struct {
		field  string
		values []string
	}{
		{"phonetics", f.Phonetics},
		{"audio_urls", f.AudioURLs},
		{"examples", f.Examples},
		{"synonyms", f.Synonyms},
		{"antonyms", f.Antonyms},
	}
	for _, l := range lists {
		if len(l.values) > maxListItems {
			errs = append(errs, domain.FieldError{Field: l.field, Message: "too many (max " + strconv.Itoa(maxListItems) + ")"})
		}
	}

	return errs
}

// apply copies the fields onto w and recomputes completeness.
func (f *WordFields) apply(w *domain.Word) {
	w.Lemma = strings.TrimSpace(f.Lemma)
	w.PartOfSpeech = strings.TrimSpace(f.PartOfSpeech)
	w.Phonetics = domain.DedupStrings(f.Phonetics)
	w.AudioURLs = domain.DedupStrings(f.AudioURLs)
	w.DefinitionEn = strings.TrimSpace(f.DefinitionEn)
	w.DefinitionLocal = strings.TrimSpace(f.DefinitionLocal)
	w.Examples = domain.DedupStrings(f.Examples)
	w.Synonyms = domain.DedupStrings(f.Synonyms)
	w.Antonyms = domain.DedupStrings(f.Antonyms)
	w.Notes = f.Notes
	w.InfoCompleteness = domain.ComputeCompleteness(*w)
}

// CreateWordInput holds the parameters for adding a word manually.
type CreateWordInput struct {
	WordFields
	TagIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateWordInput) Validate() error {
	errs := i.WordFields.validate()
	if len(i.TagIDs) > maxListItems {
		errs = append(errs, domain.FieldError{Field: "tag_ids", Message: "too many (max 20)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWordInput replaces the editable state of an existing word. Tags and
// scheduling dates are not touched.
type UpdateWordInput struct {
	ID uuid.UUID
	WordFields
	Status      domain.WordStatus
	NeedsReview bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.WordFields.validate()...)
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be unlearned, learning or mastered"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Name  string
	Color string
}

// Validate checks all fields and collects all errors.
func (i *CreateTagInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxTagNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 50)"})
	}
	if c := strings.TrimSpace(i.Color); c != "" && !isHexColor(c) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #rrggbb hex color"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

func validateNoteContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.NewValidationError("content", "required")
	}
	if len(content) > maxNotesLen {
		return domain.NewValidationError("content", "too long (max 5000)")
	}
	return nil
}
