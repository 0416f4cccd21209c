package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// CreateTag creates a tag. Names are unique case-insensitively.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.tags.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("tag %q: %w", existing.Name, domain.ErrAlreadyExists)
	}

	t := domain.NewTag(input.Name, input.Color, s.clock.Now().UTC())
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return &t, nil
}

// ListTags returns all tags.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// DeleteTag detaches the tag from every word carrying it and deletes it.
// Deleting a missing tag is a no-op.
func (s *Service) DeleteTag(ctx context.Context, id uuid.UUID) error {
	tagID := id
	words, _, err := s.words.Search(ctx, domain.WordFilter{TagID: &tagID})
	if err != nil {
		return fmt.Errorf("find tagged words: %w", err)
	}

	for i := range words {
		w := &words[i]
		var found bool
		if w.Tags, found = domain.RemoveID(w.Tags, id); !found {
			continue
		}
		if err := s.words.Update(ctx, *w); err != nil {
			return fmt.Errorf("untag word %s: %w", w.ID, err)
		}
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("tag_id", id.String()),
		slog.Int("words", len(words)),
	)
	return nil
}

// TagWord attaches a tag to a word. Attaching twice is a no-op.
func (s *Service) TagWord(ctx context.Context, wordID, tagID uuid.UUID) (*domain.Word, error) {
	w, err := s.getWord(ctx, wordID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getTag(ctx, tagID); err != nil {
		return nil, err
	}

	before := len(w.Tags)
	w.Tags = domain.AddID(w.Tags, tagID)
	if len(w.Tags) == before {
		return w, nil
	}

	if err := s.words.Update(ctx, *w); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	if err := s.tags.AdjustCount(ctx, tagID, 1); err != nil {
		return nil, fmt.Errorf("increment tag: %w", err)
	}
	return w, nil
}

// UntagWord detaches a tag from a word. The tag count never drops below zero.
func (s *Service) UntagWord(ctx context.Context, wordID, tagID uuid.UUID) (*domain.Word, error) {
	w, err := s.getWord(ctx, wordID)
	if err != nil {
		return nil, err
	}

	var found bool
	if w.Tags, found = domain.RemoveID(w.Tags, tagID); !found {
		return w, nil
	}

	if err := s.words.Update(ctx, *w); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	if err := s.tags.AdjustCount(ctx, tagID, -1); err != nil {
		return nil, fmt.Errorf("decrement tag: %w", err)
	}
	return w, nil
}
