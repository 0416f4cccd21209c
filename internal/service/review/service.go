// Package review schedules vocabulary reviews: pure scheduling rules in
// scheduler.go and the Service that applies them to stored words.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	Update(ctx context.Context, w domain.Word) error
	GetAll(ctx context.Context) ([]domain.Word, error)
	CountDue(ctx context.Context, now time.Time) (int, error)
}

type actionRecorder interface {
	Record(ctx context.Context, sessionID uuid.UUID, kind domain.ActionKind, wordID *uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service applies review outcomes and answers due-word queries.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	actions  actionRecorder
	clock    clockwork.Clock
	maxWords int
}

// NewService creates a new review service. actions may be nil, in which
// case outcomes are not linked to sessions.
func NewService(
	log *slog.Logger,
	words wordRepo,
	actions actionRecorder,
	clock clockwork.Clock,
	maxWordsPerSession int,
) *Service {
	return &Service{
		log:      log.With("service", "review"),
		words:    words,
		actions:  actions,
		clock:    clock,
		maxWords: maxWordsPerSession,
	}
}
