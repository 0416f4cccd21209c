// Package progress derives progress snapshots, streaks and study statistics
// from words, sessions and quizzes.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	CountByStatus(ctx context.Context) (domain.WordStatusCounts, error)
	LatestStudiedAt(ctx context.Context) (*time.Time, error)
}

type sessionRepo interface {
	ListEndedSince(ctx context.Context, from time.Time) ([]domain.LearningSession, error)
}

type quizRepo interface {
	ListSince(ctx context.Context, from time.Time) ([]domain.Quiz, error)
}

type progressRepo interface {
	Get(ctx context.Context) (*domain.UserProgress, error)
	Upsert(ctx context.Context, p domain.UserProgress) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service computes progress and statistics. Calendar days are evaluated in
// the configured timezone.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	sessions sessionRepo
	quizzes  quizRepo
	progress progressRepo
	clock    clockwork.Clock
	tz       *time.Location
	maxDays  int
}

// NewService creates a new progress service. maxDays bounds every
// statistics window and sizes the stored heatmap.
func NewService(
	log *slog.Logger,
	words wordRepo,
	sessions sessionRepo,
	quizzes quizRepo,
	progress progressRepo,
	clock clockwork.Clock,
	tz *time.Location,
	maxDays int,
) *Service {
	if tz == nil {
		tz = time.UTC
	}
	return &Service{
		log:      log.With("service", "progress"),
		words:    words,
		sessions: sessions,
		quizzes:  quizzes,
		progress: progress,
		clock:    clock,
		tz:       tz,
		maxDays:  maxDays,
	}
}
