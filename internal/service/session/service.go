// Package session tracks learning sessions and their action logs.
package session

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

type sessionRepo interface {
	Create(ctx context.Context, s domain.LearningSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error)
	End(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMs int64) error
	AppendAction(ctx context.Context, sessionID uuid.UUID, a domain.SessionAction) error
	ListRecent(ctx context.Context, limit int) ([]domain.LearningSession, error)
	ListActive(ctx context.Context) ([]domain.LearningSession, error)
	ListEndedSince(ctx context.Context, from time.Time) ([]domain.LearningSession, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the learning session tracker.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	tx       txManager
	clock    clockwork.Clock
}

// NewService creates a new session service.
func NewService(log *slog.Logger, sessions sessionRepo, tx txManager, clock clockwork.Clock) *Service {
	return &Service{
		log:      log.With("service", "session"),
		sessions: sessions,
		tx:       tx,
		clock:    clock,
	}
}
