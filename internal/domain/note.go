package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is free text a user attaches to a word.
type Note struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
