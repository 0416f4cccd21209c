package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// MarkMastered sets the word to mastered and stamps it as studied now.
func (s *Service) MarkMastered(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.SetStatus(ctx, id, domain.WordStatusMastered)
}

// SetStatus overrides the learning status of a word. The scheduler's due
// date is left as is.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be unlearned, learning or mastered")
	}

	w, err := s.getWord(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	w.Status = status
	w.LastStudiedAt = &now

	if err := s.words.Update(ctx, *w); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word status updated",
		slog.String("word_id", id.String()),
		slog.String("status", status.String()),
	)
	return w, nil
}

// MarkNeedsReview flags the word for review. A mastered word drops back
// to learning.
func (s *Service) MarkNeedsReview(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := s.getWord(ctx, id)
	if err != nil {
		return nil, err
	}

	w.NeedsReview = true
	if w.Status == domain.WordStatusMastered {
		w.Status = domain.WordStatusLearning
	}

	if err := s.words.Update(ctx, *w); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word marked as needs review", slog.String("word_id", id.String()))
	return w, nil
}
