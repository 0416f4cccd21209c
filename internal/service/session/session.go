package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// Start opens a new session at the current time.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.LearningSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	wordIDs := domain.DedupIDs(input.WordIDs)
	sess := domain.LearningSession{
		ID:        uuid.New(),
		Type:      input.Type,
		WordIDs:   wordIDs,
		StartedAt: s.clock.Now().UTC(),
		Actions:   []domain.SessionAction{},
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("type", string(sess.Type)),
		slog.Int("word_count", len(wordIDs)),
	)
	return &sess, nil
}

// End closes the session. Duration is fixed once; ending an ended session
// returns domain.ErrConflict.
func (s *Service) End(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error) {
	var ended *domain.LearningSession

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sess, err := s.get(ctx, id)
		if err != nil {
			return err
		}
		if !sess.IsActive() {
			return fmt.Errorf("session %s: already ended: %w", id, domain.ErrConflict)
		}

		now := s.clock.Now().UTC()
		durationMs := max(now.Sub(sess.StartedAt).Milliseconds(), 0)
		if err := s.sessions.End(ctx, id, now, durationMs); err != nil {
			return fmt.Errorf("end session: %w", err)
		}

		sess.EndedAt = &now
		sess.DurationMs = durationMs
		ended = sess
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session ended",
		slog.String("session_id", id.String()),
		slog.Int64("duration_ms", ended.DurationMs),
		slog.Int("action_count", len(ended.Actions)),
	)
	return ended, nil
}

// AppendAction adds an entry to the session's log. Timestamps never go
// backwards within a session even if the clock does.
func (s *Service) AppendAction(ctx context.Context, id uuid.UUID, input AppendActionInput) (*domain.SessionAction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var action domain.SessionAction

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sess, err := s.get(ctx, id)
		if err != nil {
			return err
		}
		if !sess.IsActive() {
			return fmt.Errorf("session %s: ended: %w", id, domain.ErrConflict)
		}

		action = nextAction(sess.Actions, input, s.clock.Now().UTC())
		if err := s.sessions.AppendAction(ctx, id, action); err != nil {
			return fmt.Errorf("append action: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "session action appended",
		slog.String("session_id", id.String()),
		slog.String("kind", string(action.Kind)),
		slog.Int("seq", action.Seq),
	)
	return &action, nil
}

// Record appends an action of the given kind. It lets other services log
// into a session without building an input.
func (s *Service) Record(ctx context.Context, sessionID uuid.UUID, kind domain.ActionKind, wordID *uuid.UUID) error {
	_, err := s.AppendAction(ctx, sessionID, AppendActionInput{Kind: kind, WordID: wordID})
	return err
}

// Get returns a session with its actions.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error) {
	return s.get(ctx, id)
}

// ListRecent returns the latest sessions, newest first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.LearningSession, error) {
	if limit <= 0 || limit > MaxRecentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxRecentLimit))
	}
	sessions, err := s.sessions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	return sessions, nil
}

// ListActive returns sessions that have not been ended.
func (s *Service) ListActive(ctx context.Context) ([]domain.LearningSession, error) {
	sessions, err := s.sessions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	return sessions, nil
}

// ListEndedSince returns sessions ended at or after from.
func (s *Service) ListEndedSince(ctx context.Context, from time.Time) ([]domain.LearningSession, error) {
	sessions, err := s.sessions.ListEndedSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// nextAction builds the entry that follows log: seq is one past the last
// and the timestamp is clamped to the last entry's.
func nextAction(log []domain.SessionAction, input AppendActionInput, now time.Time) domain.SessionAction {
	a := domain.SessionAction{Seq: 1, Kind: input.Kind, WordID: input.WordID, At: now}
	if n := len(log); n > 0 {
		last := log[n-1]
		a.Seq = last.Seq + 1
		if a.At.Before(last.At) {
			a.At = last.At
		}
	}
	return a
}
