package domain

import "github.com/google/uuid"

// WordFilter contains filtering/pagination parameters for word searches.
type WordFilter struct {
	Search      *string
	Status      *WordStatus
	TagID       *uuid.UUID
	NeedsReview *bool
	Source      *WordSource
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}
