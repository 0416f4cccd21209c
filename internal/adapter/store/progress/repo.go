// Package progress persists the UserProgress singleton.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const table = "user_progress"

var columns = []string{
	"key", "total_words", "mastered_words", "learning_words", "streak_days",
	"total_study_minutes", "last_activity_at", "heatmap", "updated_at",
}

// Repo stores a single row keyed by domain.ProgressKey.
type Repo struct {
	db *store.DB
}

// New creates a new progress repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Get returns the stored snapshot or nil, nil when none was saved yet.
func (r *Repo) Get(ctx context.Context) (*domain.UserProgress, error) {
	query, args, err := r.db.Builder().
		Select(columns[1:]...).
		From(table).
		Where(sq.Eq{"key": domain.ProgressKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get progress: %w", err)
	}

	var (
		p       domain.UserProgress
		lastAct sql.NullTime
		heatmap []byte
	)
	err = store.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&p.TotalWords, &p.MasteredWords, &p.LearningWords, &p.StreakDays,
		&p.TotalStudyMinutes, &lastAct, &heatmap, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.MapError(err, "progress", "")
	}

	p.LastActivityAt = store.TimePtr(lastAct)
	p.UpdatedAt = store.NormalizeTime(p.UpdatedAt)
	p.Heatmap = map[string]int{}
	if err := store.DecodeJSON(heatmap, &p.Heatmap); err != nil {
		return nil, fmt.Errorf("progress: %w", err)
	}
	return &p, nil
}

// Upsert replaces the stored snapshot.
func (r *Repo) Upsert(ctx context.Context, p domain.UserProgress) error {
	heatmap := p.Heatmap
	if heatmap == nil {
		heatmap = map[string]int{}
	}
	encoded, err := store.EncodeJSON(heatmap)
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		updates = append(updates, c+" = excluded."+c)
	}

	query, args, err := r.db.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			domain.ProgressKey, p.TotalWords, p.MasteredWords, p.LearningWords, p.StreakDays,
			p.TotalStudyMinutes, store.NullTime(p.LastActivityAt), encoded, store.NormalizeTime(p.UpdatedAt),
		).
		Suffix("ON CONFLICT (key) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert progress: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "progress", "")
	}
	return nil
}
