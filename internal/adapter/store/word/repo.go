// Package word implements the Word repository on top of the record store.
package word

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const table = "words"

var columns = []string{
	"id", "lemma", "lemma_normalized", "part_of_speech", "phonetics", "audio_urls",
	"definition_en", "definition_local", "examples", "synonyms", "antonyms",
	"status", "needs_review", "last_studied_at", "review_due_at", "notes",
	"source", "info_completeness", "tags", "set_ids",
}

// Repo provides word persistence. Secondary lookups by status and review
// due date are served by engine indexes that are updated in the same
// statement as the row.
type Repo struct {
	db *store.DB
}

// New creates a new word repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts w. Identity is assigned by the caller; a duplicate id
// returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w domain.Word) (uuid.UUID, error) {
	row, err := toRow(w)
	if err != nil {
		return uuid.Nil, fmt.Errorf("word %s: %w", w.ID, err)
	}

	query, args, err := r.db.Builder().
		Insert(table).
		Columns(columns...).
		Values(row.values()...).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build insert word: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return uuid.Nil, store.MapError(err, "word", w.ID)
	}

	return w.ID, nil
}

// Update replaces the whole record. It never upserts: a missing id returns
// domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, w domain.Word) error {
	row, err := toRow(w)
	if err != nil {
		return fmt.Errorf("word %s: %w", w.ID, err)
	}

	values := row.values()
	b := r.db.Builder().Update(table)
	for i, col := range columns {
		if col == "id" {
			continue
		}
		b = b.Set(col, values[i])
	}

	query, args, err := b.Where(sq.Eq{"id": w.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("build update word: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "word", w.ID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, "word", w.ID)
	}
	if n == 0 {
		return fmt.Errorf("word %s: %w", w.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the word. Deleting a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.db.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "word", id)
	}
	return nil
}

// DeleteAll removes every word and returns how many rows were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	query, args, err := r.db.Builder().Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete words: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, store.MapError(err, "delete words", "")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, store.MapError(err, "delete words", "")
	}
	return int(n), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the word or nil, nil when it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	words, err := r.list(ctx, "word", r.selectWords().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return &words[0], nil
}

// GetByIDs returns the words that exist among ids, in primary-key order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}
	return r.list(ctx, "words by ids", r.selectWords().Where(sq.Eq{"id": ids}).OrderBy("id"))
}

// FindByLemma looks a word up by case-insensitive lemma. Returns nil, nil
// when there is no match.
func (r *Repo) FindByLemma(ctx context.Context, lemma string) (*domain.Word, error) {
	words, err := r.list(ctx, "word by lemma",
		r.selectWords().Where(sq.Eq{"lemma_normalized": domain.NormalizeText(lemma)}).OrderBy("id").Limit(1))
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return &words[0], nil
}

// GetAll returns every word in primary-key order.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Word, error) {
	return r.list(ctx, "all words", r.selectWords().OrderBy("id"))
}

// GetPage returns one page of words in primary-key order along with the
// total count.
func (r *Repo) GetPage(ctx context.Context, offset, limit int) (domain.WordPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 50
	}

	total, err := r.count(ctx, "count words", r.db.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return domain.WordPage{}, err
	}

	items, err := r.list(ctx, "words page",
		r.selectWords().OrderBy("id").Limit(uint64(limit)).Offset(uint64(offset)))
	if err != nil {
		return domain.WordPage{}, err
	}

	return domain.WordPage{
		Items:   items,
		Total:   total,
		HasMore: offset+len(items) < total,
	}, nil
}

// GetByStatus returns all words with the given status.
func (r *Repo) GetByStatus(ctx context.Context, status domain.WordStatus) ([]domain.Word, error) {
	return r.list(ctx, "words by status",
		r.selectWords().Where(sq.Eq{"status": string(status)}).OrderBy("id"))
}

// GetByReviewDue returns words whose review_due_at is at or before the
// given time, earliest first.
func (r *Repo) GetByReviewDue(ctx context.Context, before time.Time) ([]domain.Word, error) {
	return r.list(ctx, "words by review due",
		r.selectWords().
			Where(sq.NotEq{"review_due_at": nil}).
			Where(sq.LtOrEq{"review_due_at": store.NormalizeTime(before)}).
			OrderBy("review_due_at", "id"))
}

// ListIncomplete returns up to limit words whose lexical data is not complete.
func (r *Repo) ListIncomplete(ctx context.Context, limit int) ([]domain.Word, error) {
	b := r.selectWords().
		Where(sq.NotEq{"info_completeness": string(domain.InfoComplete)}).
		OrderBy("id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, "incomplete words", b)
}

// Search returns words matching the filter and the total match count.
func (r *Repo) Search(ctx context.Context, f domain.WordFilter) ([]domain.Word, int, error) {
	where := r.filterPredicates(f)

	countQ := r.db.Builder().Select("COUNT(*)").From(table)
	listQ := r.selectWords()
	for _, p := range where {
		countQ = countQ.Where(p)
		listQ = listQ.Where(p)
	}

	total, err := r.count(ctx, "count words", countQ)
	if err != nil {
		return nil, 0, err
	}

	listQ = listQ.OrderBy(orderClause(f.SortBy, f.SortOrder), "id")
	if f.Limit > 0 {
		listQ = listQ.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		listQ = listQ.Offset(uint64(f.Offset))
	}

	items, err := r.list(ctx, "search words", listQ)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// LatestStudiedAt returns the most recent last_studied_at across all words,
// or nil when no word was ever studied.
func (r *Repo) LatestStudiedAt(ctx context.Context) (*time.Time, error) {
	query, args, err := r.db.Builder().
		Select("last_studied_at").
		From(table).
		Where(sq.NotEq{"last_studied_at": nil}).
		OrderBy("last_studied_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest studied: %w", err)
	}

	var t time.Time
	err = store.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.MapError(err, "latest studied", "")
	}
	t = store.NormalizeTime(t)
	return &t, nil
}

// ---------------------------------------------------------------------------
// Counts
// ---------------------------------------------------------------------------

// Count returns the number of words in the library.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return r.count(ctx, "count words", r.db.Builder().Select("COUNT(*)").From(table))
}

// CountDue counts words flagged for review or scheduled at or before now.
// It agrees with the in-memory due predicate of the scheduler.
func (r *Repo) CountDue(ctx context.Context, now time.Time) (int, error) {
	return r.count(ctx, "count due words",
		r.db.Builder().Select("COUNT(*)").From(table).Where(duePredicate(now)))
}

// CountByStatus returns per-status word counts.
func (r *Repo) CountByStatus(ctx context.Context) (domain.WordStatusCounts, error) {
	query, args, err := r.db.Builder().
		Select("status", "COUNT(*)").
		From(table).
		GroupBy("status").
		ToSql()
	if err != nil {
		return domain.WordStatusCounts{}, fmt.Errorf("build count by status: %w", err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return domain.WordStatusCounts{}, store.MapError(err, "count by status", "")
	}
	defer rows.Close()

	var counts domain.WordStatusCounts
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.WordStatusCounts{}, store.MapError(err, "count by status", "")
		}
		switch domain.WordStatus(status) {
		case domain.WordStatusUnlearned:
			counts.Unlearned = n
		case domain.WordStatusLearning:
			counts.Learning = n
		case domain.WordStatusMastered:
			counts.Mastered = n
		}
	}
	if err := rows.Err(); err != nil {
		return domain.WordStatusCounts{}, store.MapError(err, "count by status", "")
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func duePredicate(now time.Time) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"needs_review": true},
		sq.And{
			sq.NotEq{"review_due_at": nil},
			sq.LtOrEq{"review_due_at": store.NormalizeTime(now)},
		},
	}
}

func (r *Repo) filterPredicates(f domain.WordFilter) []sq.Sqlizer {
	var where []sq.Sqlizer
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if f.NeedsReview != nil {
		where = append(where, sq.Eq{"needs_review": *f.NeedsReview})
	}
	if f.Source != nil {
		where = append(where, sq.Eq{"source": string(*f.Source)})
	}
	if f.Search != nil {
		if s := domain.NormalizeText(*f.Search); s != "" {
			where = append(where, sq.Like{"lemma_normalized": stripWildcards(s) + "%"})
		}
	}
	if f.TagID != nil {
		where = append(where, sq.Expr(r.db.Dialect().JSONArrayContains("tags"), f.TagID.String()))
	}
	return where
}

func orderClause(sortBy, sortOrder string) string {
	col := "lemma_normalized"
	switch sortBy {
	case "review_due_at":
		col = "review_due_at"
	case "last_studied_at":
		col = "last_studied_at"
	case "status":
		col = "status"
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

var wildcardStripper = strings.NewReplacer(`%`, ``, `_`, ``)

// stripWildcards drops LIKE metacharacters so user input is matched literally.
func stripWildcards(s string) string {
	return wildcardStripper.Replace(s)
}

func (r *Repo) selectWords() sq.SelectBuilder {
	return r.db.Builder().Select(columns...).From(table)
}

func (r *Repo) count(ctx context.Context, op string, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s: %w", op, err)
	}

	var n int
	if err := store.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, store.MapError(err, op, "")
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.Word, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			if errors.Is(err, errDecode) {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			return nil, store.MapError(err, op, "")
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}

	return words, nil
}
