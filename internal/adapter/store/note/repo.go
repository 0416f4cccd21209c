// Package note persists free-text notes attached to words.
package note

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const table = "notes"

var columns = []string{"id", "word_id", "content", "created_at", "updated_at"}

// Repo provides note persistence.
type Repo struct {
	db *store.DB
}

// New creates a new note repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n domain.Note) error {
	query, args, err := r.db.Builder().
		Insert(table).
		Columns(columns...).
		Values(n.ID, n.WordID, n.Content, store.NormalizeTime(n.CreatedAt), store.NormalizeTime(n.UpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert note: %w", err)
	}
	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "note", n.ID)
	}
	return nil
}

// Update replaces the content and updated_at of a note.
func (r *Repo) Update(ctx context.Context, n domain.Note) error {
	query, args, err := r.db.Builder().
		Update(table).
		Set("content", n.Content).
		Set("updated_at", store.NormalizeTime(n.UpdatedAt)).
		Where(sq.Eq{"id": n.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update note: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "note", n.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, "note", n.ID)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", n.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a note. Missing ids are ignored.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, sq.Eq{"id": id}, id)
}

// DeleteByWordID removes every note of a word.
func (r *Repo) DeleteByWordID(ctx context.Context, wordID uuid.UUID) error {
	return r.delete(ctx, sq.Eq{"word_id": wordID}, wordID)
}

// GetByID returns the note or nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	notes, err := r.list(ctx, "note", r.db.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return &notes[0], nil
}

// ListByWordID returns the notes of a word, oldest first.
func (r *Repo) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error) {
	return r.list(ctx, "notes by word",
		r.db.Builder().Select(columns...).From(table).
			Where(sq.Eq{"word_id": wordID}).
			OrderBy("created_at", "id"))
}

func (r *Repo) delete(ctx context.Context, where sq.Eq, id uuid.UUID) error {
	query, args, err := r.db.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("build delete note: %w", err)
	}
	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "note", id)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.Note, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.WordID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, store.MapError(err, op, "")
		}
		n.CreatedAt = store.NormalizeTime(n.CreatedAt)
		n.UpdatedAt = store.NormalizeTime(n.UpdatedAt)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return notes, nil
}
