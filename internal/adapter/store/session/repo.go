// Package session persists learning sessions and their append-only action logs.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const (
	sessionsTable = "learning_sessions"
	actionsTable  = "session_actions"
)

var (
	sessionColumns = []string{"id", "type", "word_ids", "started_at", "ended_at", "duration_ms"}
	actionColumns  = []string{"session_id", "seq", "kind", "word_id", "occurred_at"}
)

// Repo provides session persistence.
type Repo struct {
	db *store.DB
}

// New creates a new session repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts the session header and any actions it already carries.
func (r *Repo) Create(ctx context.Context, s domain.LearningSession) error {
	wordIDs, err := store.EncodeJSON(nonNilIDs(s.WordIDs))
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	query, args, err := r.db.Builder().
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.ID, string(s.Type), wordIDs, store.NormalizeTime(s.StartedAt), store.NullTime(s.EndedAt), s.DurationMs).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "session", s.ID)
	}

	for _, a := range s.Actions {
		if err := r.AppendAction(ctx, s.ID, a); err != nil {
			return err
		}
	}
	return nil
}

// End sets ended_at and duration_ms exactly once. It returns
// domain.ErrConflict when the session is missing or already ended; callers
// check existence first to tell the two apart.
func (r *Repo) End(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMs int64) error {
	query, args, err := r.db.Builder().
		Update(sessionsTable).
		Set("ended_at", store.NormalizeTime(endedAt)).
		Set("duration_ms", durationMs).
		Where(sq.Eq{"id": id, "ended_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build end session: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "session", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, "session", id)
	}
	if n == 0 {
		return fmt.Errorf("session %s: already ended: %w", id, domain.ErrConflict)
	}
	return nil
}

// AppendAction adds one entry to the session's action log. A repeated seq
// returns domain.ErrAlreadyExists; an unknown session returns domain.ErrNotFound.
func (r *Repo) AppendAction(ctx context.Context, sessionID uuid.UUID, a domain.SessionAction) error {
	var wordID any
	if a.WordID != nil {
		wordID = *a.WordID
	}

	query, args, err := r.db.Builder().
		Insert(actionsTable).
		Columns(actionColumns...).
		Values(sessionID, a.Seq, string(a.Kind), wordID, store.NormalizeTime(a.At)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session action: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "session action", fmt.Sprintf("%s#%d", sessionID, a.Seq))
	}
	return nil
}

// Delete removes a session and its actions. Missing ids are ignored.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := store.QuerierFromCtx(ctx, r.db)

	for _, stmt := range []sq.DeleteBuilder{
		r.db.Builder().Delete(actionsTable).Where(sq.Eq{"session_id": id}),
		r.db.Builder().Delete(sessionsTable).Where(sq.Eq{"id": id}),
	} {
		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("build delete session: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return store.MapError(err, "session", id)
		}
	}
	return nil
}

// GetByID returns the session with its actions in seq order, or nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error) {
	sessions, err := r.list(ctx, "session", r.selectSessions().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// ListRecent returns the most recently started sessions, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.LearningSession, error) {
	b := r.selectSessions().OrderBy("started_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, "recent sessions", b)
}

// ListActive returns sessions that have not been ended, oldest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.LearningSession, error) {
	return r.list(ctx, "active sessions",
		r.selectSessions().Where(sq.Eq{"ended_at": nil}).OrderBy("started_at", "id"))
}

// ListEndedSince returns sessions ended at or after from, oldest first.
// A zero from returns every ended session.
func (r *Repo) ListEndedSince(ctx context.Context, from time.Time) ([]domain.LearningSession, error) {
	b := r.selectSessions().Where(sq.NotEq{"ended_at": nil})
	if !from.IsZero() {
		b = b.Where(sq.GtOrEq{"ended_at": store.NormalizeTime(from)})
	}
	return r.list(ctx, "ended sessions", b.OrderBy("ended_at", "id"))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectSessions() sq.SelectBuilder {
	return r.db.Builder().Select(sessionColumns...).From(sessionsTable)
}

func (r *Repo) list(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.LearningSession, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	sessions, err := r.scanSessions(ctx, op, query, args)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	// Rows are closed by now; SQLite runs on a single connection.
	ids := make([]uuid.UUID, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}
	actions, err := r.actionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if a, ok := actions[sessions[i].ID]; ok {
			sessions[i].Actions = a
		}
	}
	return sessions, nil
}

func (r *Repo) scanSessions(ctx context.Context, op, query string, args []any) ([]domain.LearningSession, error) {
	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	sessions := []domain.LearningSession{}
	for rows.Next() {
		var (
			s       domain.LearningSession
			typ     string
			wordIDs []byte
			ended   sql.NullTime
		)
		if err := rows.Scan(&s.ID, &typ, &wordIDs, &s.StartedAt, &ended, &s.DurationMs); err != nil {
			return nil, store.MapError(err, op, "")
		}
		s.Type = domain.SessionType(typ)
		s.StartedAt = store.NormalizeTime(s.StartedAt)
		s.EndedAt = store.TimePtr(ended)
		s.WordIDs = []uuid.UUID{}
		s.Actions = []domain.SessionAction{}
		if err := store.DecodeJSON(wordIDs, &s.WordIDs); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, s.ID, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return sessions, nil
}

func (r *Repo) actionsFor(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID][]domain.SessionAction, error) {
	query, args, err := r.db.Builder().
		Select(actionColumns...).
		From(actionsTable).
		Where(sq.Eq{"session_id": sessionIDs}).
		OrderBy("session_id", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build session actions: %w", err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, "session actions", "")
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.SessionAction, len(sessionIDs))
	for rows.Next() {
		var (
			sessionID uuid.UUID
			a         domain.SessionAction
			kind      string
			wordID    uuid.NullUUID
		)
		if err := rows.Scan(&sessionID, &a.Seq, &kind, &wordID, &a.At); err != nil {
			return nil, store.MapError(err, "session actions", "")
		}
		a.Kind = domain.ActionKind(kind)
		a.At = store.NormalizeTime(a.At)
		if wordID.Valid {
			id := wordID.UUID
			a.WordID = &id
		}
		out[sessionID] = append(out[sessionID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, "session actions", "")
	}
	return out, nil
}

func nonNilIDs(s []uuid.UUID) []uuid.UUID {
	if s == nil {
		return []uuid.UUID{}
	}
	return s
}
