package review

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// RecordOutcomeInput holds the parameters for recording a review outcome.
type RecordOutcomeInput struct {
	WordID  uuid.UUID
	Success bool
	// SessionID optionally links the outcome to a learning session's action log.
	SessionID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *RecordOutcomeInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.SessionID != nil && *i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "must not be empty when set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetDueInput holds the parameters for listing due words.
type GetDueInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetDueInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and the session maximum"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
