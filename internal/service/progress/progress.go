package progress

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// Refresh recomputes the progress snapshot from words and ended sessions
// and stores it.
func (s *Service) Refresh(ctx context.Context) (*domain.UserProgress, error) {
	now := s.clock.Now()

	counts, err := s.words.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	latest, err := s.words.LatestStudiedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest studied: %w", err)
	}

	sessions, err := s.sessions.ListEndedSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}

	var totalMs int64
	active := make(map[string]bool)
	heatmap := make(map[string]int)
	heatmapFrom := windowStart(now, s.tz, s.maxDays)

	for _, sess := range sessions {
		totalMs += sess.DurationMs
		endedAt := *sess.EndedAt
		active[DayKey(endedAt, s.tz)] = true
		if !endedAt.Before(heatmapFrom) {
			heatmap[DayKey(endedAt, s.tz)] += roundMinutes(sess.DurationMs)
		}
		if latest == nil || endedAt.After(*latest) {
			t := endedAt
			latest = &t
		}
	}

	p := domain.UserProgress{
		TotalWords:        counts.Total(),
		MasteredWords:     counts.Mastered,
		LearningWords:     counts.Learning,
		StreakDays:        Streak(active, now.In(s.tz)),
		TotalStudyMinutes: roundMinutes(totalMs),
		LastActivityAt:    latest,
		Heatmap:           heatmap,
		UpdatedAt:         now.UTC(),
	}

	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("store progress: %w", err)
	}

	s.log.InfoContext(ctx, "progress refreshed",
		slog.Int("total_words", p.TotalWords),
		slog.Int("mastered_words", p.MasteredWords),
		slog.Int("streak_days", p.StreakDays),
		slog.Int("total_study_minutes", p.TotalStudyMinutes),
	)
	return &p, nil
}

// Get returns the stored snapshot, computing it when none exists yet.
func (s *Service) Get(ctx context.Context) (*domain.UserProgress, error) {
	p, err := s.progress.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if p != nil {
		return p, nil
	}
	return s.Refresh(ctx)
}

// roundMinutes converts milliseconds to whole minutes, rounding half up.
func roundMinutes(ms int64) int {
	return int(math.Round(float64(ms) / float64(time.Minute/time.Millisecond)))
}
