package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// AddNote attaches a note to an existing word.
func (s *Service) AddNote(ctx context.Context, wordID uuid.UUID, content string) (*domain.Note, error) {
	if err := validateNoteContent(content); err != nil {
		return nil, err
	}
	if _, err := s.getWord(ctx, wordID); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	n := domain.Note{
		ID:        uuid.New(),
		WordID:    wordID,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return &n, nil
}

// UpdateNote replaces the note content and refreshes UpdatedAt.
func (s *Service) UpdateNote(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error) {
	if err := validateNoteContent(content); err != nil {
		return nil, err
	}

	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if n == nil {
		return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	n.Content = strings.TrimSpace(content)
	n.UpdatedAt = s.clock.Now().UTC()
	if err := s.notes.Update(ctx, *n); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

// ListNotes returns the notes of a word, oldest first.
func (s *Service) ListNotes(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error) {
	notes, err := s.notes.ListByWordID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// DeleteNote removes a note. Missing notes are ignored.
func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
