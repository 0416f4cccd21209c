// Package dictionary manages the word library directly: words, their
// status overrides, tags and notes. It does not go through the review
// scheduler.
package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Create(ctx context.Context, w domain.Word) (uuid.UUID, error)
	Update(ctx context.Context, w domain.Word) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	FindByLemma(ctx context.Context, lemma string) (*domain.Word, error)
	Search(ctx context.Context, f domain.WordFilter) ([]domain.Word, int, error)
	GetAll(ctx context.Context) ([]domain.Word, error)
	Count(ctx context.Context) (int, error)
}

type tagRepo interface {
	Create(ctx context.Context, t domain.Tag) error
	AdjustCount(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

type noteRepo interface {
	Create(ctx context.Context, n domain.Note) error
	Update(ctx context.Context, n domain.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dictionary business logic.
type Service struct {
	log   *slog.Logger
	words wordRepo
	tags  tagRepo
	notes noteRepo
	clock clockwork.Clock
	cfg   config.DictionaryConfig
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	tags tagRepo,
	notes noteRepo,
	clock clockwork.Clock,
	cfg config.DictionaryConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "dictionary"),
		words: words,
		tags:  tags,
		notes: notes,
		clock: clock,
		cfg:   cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}

func (s *Service) getWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, wordNotFound(id)
	}
	return w, nil
}

func (s *Service) getTag(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	t, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func wordNotFound(id uuid.UUID) error {
	return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
}
