package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningSession is one bounded interval of study or review activity.
type LearningSession struct {
	ID         uuid.UUID
	Type       SessionType
	WordIDs    []uuid.UUID
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs int64
	Actions    []SessionAction
}

// IsActive reports whether the session has not been ended yet.
func (s *LearningSession) IsActive() bool {
	return s.EndedAt == nil
}

// Minutes returns the session duration rounded down to whole minutes.
func (s *LearningSession) Minutes() int {
	return int(s.DurationMs / int64(time.Minute/time.Millisecond))
}

// SessionAction is one entry in a session's append-only action log.
type SessionAction struct {
	Seq    int
	Kind   ActionKind
	WordID *uuid.UUID
	At     time.Time
}
