package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a user label attached to words. WordCount is a denormalized
// counter kept by the dictionary service.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Color     string
	WordCount int
	CreatedAt time.Time
}

// NewTag builds a tag with a fresh identity and zero count.
func NewTag(name, color string, now time.Time) Tag {
	return Tag{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Color:     strings.TrimSpace(color),
		CreatedAt: now,
	}
}
