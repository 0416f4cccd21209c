// Package quiz generates quizzes over library words and scores the answers.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

type quizRepo interface {
	Create(ctx context.Context, q domain.Quiz, questions []domain.QuizQuestion) error
	UpdateScore(ctx context.Context, id uuid.UUID, score int) error
	UpdateAnswer(ctx context.Context, q domain.QuizQuestion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.QuizQuestion, error)
	ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements quiz operations.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	quizzes quizRepo
	clock   clockwork.Clock
	shuffle func(n int, swap func(i, j int))
}

// NewService creates a new quiz service.
func NewService(log *slog.Logger, words wordRepo, quizzes quizRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:     log.With("service", "quiz"),
		words:   words,
		quizzes: quizzes,
		clock:   clock,
		shuffle: rand.Shuffle,
	}
}
