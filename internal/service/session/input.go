package session

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// MaxRecentLimit caps ListRecent.
const MaxRecentLimit = 200

// StartInput holds the parameters for starting a session.
type StartInput struct {
	Type    domain.SessionType
	WordIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be study or review"})
	}
	for _, id := range i.WordIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "word_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AppendActionInput holds the parameters for appending to a session's action log.
type AppendActionInput struct {
	Kind   domain.ActionKind
	WordID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AppendActionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown action kind"})
	}
	if i.WordID != nil && *i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "must not be empty when set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
