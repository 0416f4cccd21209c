package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// ListResult contains one page of a word search.
type ListResult struct {
	Words   []domain.Word
	Total   int
	HasMore bool
}

// ---------------------------------------------------------------------------
// CreateWord
// ---------------------------------------------------------------------------

// CreateWord adds a manual word to the library.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.words.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if s.cfg.MaxWordsInLibrary > 0 && count >= s.cfg.MaxWordsInLibrary {
		return nil, domain.NewValidationError("words", fmt.Sprintf("library limit reached (max %d)", s.cfg.MaxWordsInLibrary))
	}

	existing, err := s.words.FindByLemma(ctx, input.Lemma)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("word %q: %w", existing.Lemma, domain.ErrAlreadyExists)
	}

	tagIDs := domain.DedupIDs(input.TagIDs)
	for _, id := range tagIDs {
		if _, err := s.getTag(ctx, id); err != nil {
			return nil, err
		}
	}

	w := domain.NewWord(input.Lemma, domain.WordSourceManual)
	input.WordFields.apply(&w)
	w.Tags = tagIDs

	if err := w.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.words.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	for _, id := range tagIDs {
		if err := s.tags.AdjustCount(ctx, id, 1); err != nil {
			return nil, fmt.Errorf("increment tag %s: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", w.ID.String()),
		slog.String("lemma", w.Lemma),
	)
	return &w, nil
}

// ---------------------------------------------------------------------------
// GetWord / ListWords
// ---------------------------------------------------------------------------

// GetWord returns a single word.
func (s *Service) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.getWord(ctx, id)
}

// ListWords searches the library with offset pagination.
func (s *Service) ListWords(ctx context.Context, filter domain.WordFilter) (*ListResult, error) {
	var errs []domain.FieldError
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be unlearned, learning or mastered"})
	}
	if filter.Source != nil && !filter.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be imported or manual"})
	}
	switch filter.SortBy {
	case "", "lemma", "review_due_at", "last_studied_at", "status":
	default:
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be lemma, review_due_at, last_studied_at or status"})
	}
	if filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	filter.Limit = clampLimit(filter.Limit, 1, maxListLimit, defaultListLimit)

	words, total, err := s.words.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}

	return &ListResult{
		Words:   words,
		Total:   total,
		HasMore: filter.Offset+len(words) < total,
	}, nil
}

// ---------------------------------------------------------------------------
// UpdateWord
// ---------------------------------------------------------------------------

// UpdateWord replaces the editable fields of a word.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.getWord(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if domain.NormalizeText(input.Lemma) != domain.NormalizeText(w.Lemma) {
		other, err := s.words.FindByLemma(ctx, input.Lemma)
		if err != nil {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
		if other != nil && other.ID != w.ID {
			return nil, fmt.Errorf("word %q: %w", other.Lemma, domain.ErrAlreadyExists)
		}
	}

	input.WordFields.apply(w)
	w.Status = input.Status
	w.NeedsReview = input.NeedsReview

	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := s.words.Update(ctx, *w); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	return w, nil
}

// ---------------------------------------------------------------------------
// DeleteWord
// ---------------------------------------------------------------------------

// DeleteWord removes a word together with its notes and its tag counts.
// The steps run in sequence without a shared transaction; a failure leaves
// the earlier steps applied.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) error {
	w, err := s.getWord(ctx, id)
	if err != nil {
		return err
	}

	notes, err := s.notes.ListByWordID(ctx, id)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	for _, n := range notes {
		if err := s.notes.Delete(ctx, n.ID); err != nil {
			return fmt.Errorf("delete note %s: %w", n.ID, err)
		}
	}

	for _, tagID := range w.Tags {
		if err := s.tags.AdjustCount(ctx, tagID, -1); err != nil {
			// A dangling tag reference must not block the deletion.
			s.log.WarnContext(ctx, "decrement tag count",
				slog.String("word_id", id.String()),
				slog.String("tag_id", tagID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("word_id", id.String()),
		slog.Int("notes", len(notes)),
	)
	return nil
}
