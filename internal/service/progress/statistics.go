package progress

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// LearningTrends returns per-day study minutes and word counts for the last
// days calendar days, oldest first. Days without activity are omitted.
func (s *Service) LearningTrends(ctx context.Context, days int) ([]domain.DayTrend, error) {
	if err := s.validateDays(days); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListEndedSince(ctx, windowStart(s.clock.Now(), s.tz, days))
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}

	byDay := make(map[string]*domain.DayTrend)
	for _, sess := range sessions {
		key := DayKey(*sess.EndedAt, s.tz)
		t, ok := byDay[key]
		if !ok {
			t = &domain.DayTrend{Date: key}
			byDay[key] = t
		}
		t.Minutes += roundMinutes(sess.DurationMs)
		t.WordCount += len(sess.WordIDs)
	}

	trends := make([]domain.DayTrend, 0, len(byDay))
	for _, t := range byDay {
		trends = append(trends, *t)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	return trends, nil
}

// Heatmap returns study minutes keyed by day for the last days calendar days.
func (s *Service) Heatmap(ctx context.Context, days int) (map[string]int, error) {
	trends, err := s.LearningTrends(ctx, days)
	if err != nil {
		return nil, err
	}
	heatmap := make(map[string]int, len(trends))
	for _, t := range trends {
		heatmap[t.Date] = t.Minutes
	}
	return heatmap, nil
}

// DailyActivity summarizes the sessions that ended on date (YYYY-MM-DD in
// the configured timezone).
func (s *Service) DailyActivity(ctx context.Context, date string) (*domain.DayActivity, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.tz)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	from := DayStart(day, s.tz)
	to := NextDayStart(day, s.tz)

	sessions, err := s.sessions.ListEndedSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}

	activity := &domain.DayActivity{Date: date}
	var totalMs int64
	reviewed := make(map[uuid.UUID]struct{})
	for _, sess := range sessions {
		if !sess.EndedAt.Before(to) {
			continue
		}
		activity.Sessions++
		totalMs += sess.DurationMs
		for _, a := range sess.Actions {
			if a.WordID == nil {
				continue
			}
			if a.Kind == domain.ActionReviewSuccess || a.Kind == domain.ActionReviewFailure {
				reviewed[*a.WordID] = struct{}{}
			}
		}
	}
	activity.Minutes = roundMinutes(totalMs)
	activity.WordsReviewed = len(reviewed)
	return activity, nil
}

// QuizScoreTrends returns the average quiz score per day for the last days
// calendar days, oldest first.
func (s *Service) QuizScoreTrends(ctx context.Context, days int) ([]domain.DayScore, error) {
	if err := s.validateDays(days); err != nil {
		return nil, err
	}

	quizzes, err := s.quizzes.ListSince(ctx, windowStart(s.clock.Now(), s.tz, days))
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	type agg struct{ total, count int }
	byDay := make(map[string]*agg)
	for _, q := range quizzes {
		key := DayKey(q.CreatedAt, s.tz)
		a, ok := byDay[key]
		if !ok {
			a = &agg{}
			byDay[key] = a
		}
		a.total += q.ScorePercent
		a.count++
	}

	scores := make([]domain.DayScore, 0, len(byDay))
	for day, a := range byDay {
		scores = append(scores, domain.DayScore{
			Date:    day,
			Quizzes: a.count,
			Average: int(math.Round(float64(a.total) / float64(a.count))),
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Date < scores[j].Date })
	return scores, nil
}

func (s *Service) validateDays(days int) error {
	if days < 1 || days > s.maxDays {
		return domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", s.maxDays))
	}
	return nil
}
