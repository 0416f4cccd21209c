// Package tag persists word tags.
package tag

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const table = "tags"

var columns = []string{"id", "name", "color", "word_count", "created_at"}

// Repo provides tag persistence. Names are unique case-insensitively.
type Repo struct {
	db *store.DB
}

// New creates a new tag repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a tag. A duplicate name returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t domain.Tag) error {
	query, args, err := r.db.Builder().
		Insert(table).
		Columns("id", "name", "name_normalized", "color", "word_count", "created_at").
		Values(t.ID, t.Name, domain.NormalizeText(t.Name), t.Color, t.WordCount, store.NormalizeTime(t.CreatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert tag: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "tag", t.Name)
	}
	return nil
}

// Update changes the name and color of a tag.
func (r *Repo) Update(ctx context.Context, t domain.Tag) error {
	query, args, err := r.db.Builder().
		Update(table).
		Set("name", t.Name).
		Set("name_normalized", domain.NormalizeText(t.Name)).
		Set("color", t.Color).
		Where(sq.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update tag: %w", err)
	}
	return r.execOne(ctx, query, args, t.ID)
}

// AdjustCount adds delta to the tag's word count, clamping at zero.
func (r *Repo) AdjustCount(ctx context.Context, id uuid.UUID, delta int) error {
	query, args, err := r.db.Builder().
		Update(table).
		Set("word_count", sq.Expr("CASE WHEN word_count + ? < 0 THEN 0 ELSE word_count + ? END", delta, delta)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build adjust tag count: %w", err)
	}
	return r.execOne(ctx, query, args, id)
}

// Delete removes a tag. Missing ids are ignored.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.db.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete tag: %w", err)
	}
	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "tag", id)
	}
	return nil
}

// GetByID returns the tag or nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	return r.one(ctx, "tag", sq.Eq{"id": id})
}

// GetByName finds a tag by case-insensitive name, or returns nil, nil.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	return r.one(ctx, "tag by name", sq.Eq{"name_normalized": domain.NormalizeText(name)})
}

// List returns all tags ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	return r.list(ctx, "tags", r.db.Builder().Select(columns...).From(table).OrderBy("name_normalized"))
}

func (r *Repo) one(ctx context.Context, op string, where sq.Sqlizer) (*domain.Tag, error) {
	tags, err := r.list(ctx, op, r.db.Builder().Select(columns...).From(table).Where(where))
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return &tags[0], nil
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.Tag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.WordCount, &t.CreatedAt); err != nil {
			return nil, store.MapError(err, op, "")
		}
		t.CreatedAt = store.NormalizeTime(t.CreatedAt)
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return tags, nil
}

func (r *Repo) execOne(ctx context.Context, query string, args []any, id uuid.UUID) error {
	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "tag", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, "tag", id)
	}
	if n == 0 {
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
