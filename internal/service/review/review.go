package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// RecordReviewOutcome applies a success or failure to the word and persists
// the full updated record. A missing word fails before anything is written.
func (s *Service) RecordReviewOutcome(ctx context.Context, input RecordOutcomeInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.GetByID(ctx, input.WordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("word %s: %w", input.WordID, domain.ErrNotFound)
	}

	now := s.clock.Now().UTC()
	updated := ApplyOutcome(*w, input.Success, now)

	if err := s.words.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "review outcome recorded",
		slog.String("word_id", updated.ID.String()),
		slog.Bool("success", input.Success),
		slog.String("status", string(updated.Status)),
		slog.Time("review_due_at", *updated.ReviewDueAt),
	)

	if input.SessionID != nil && s.actions != nil {
		kind := domain.ActionReviewFailure
		if input.Success {
			kind = domain.ActionReviewSuccess
		}
		if err := s.actions.Record(ctx, *input.SessionID, kind, &updated.ID); err != nil {
			// The outcome itself is already stored.
			s.log.WarnContext(ctx, "failed to record session action",
				slog.String("session_id", input.SessionID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return &updated, nil
}

// GetDueWords returns words due for review in store order. A zero limit
// means no limit.
func (s *Service) GetDueWords(ctx context.Context, input GetDueInput) ([]domain.Word, error) {
	if err := input.Validate(s.maxWords); err != nil {
		return nil, err
	}

	all, err := s.words.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get words: %w", err)
	}

	due := DueWords(all, s.clock.Now())
	if input.Limit > 0 && len(due) > input.Limit {
		due = due[:input.Limit]
	}
	return due, nil
}

// GetDueCount returns the number of words due for review now.
func (s *Service) GetDueCount(ctx context.Context) (int, error) {
	n, err := s.words.CountDue(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("count due words: %w", err)
	}
	return n, nil
}
