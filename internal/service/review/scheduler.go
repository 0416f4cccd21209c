package review

import (
	"math"
	"time"

	"github.com/heartmarshall/wordbook/internal/domain"
)

const day = 24 * time.Hour

// Interval bounds in days.
const (
	masteredMinDays = 7
	masteredMaxDays = 30
	learningMinDays = 1
	learningMaxDays = 7
	unlearnedDays   = 1
	failureDays     = 1
)

// NextDueDate computes when w should next be reviewed. Pure function: the
// word is not modified and no I/O happens.
//
// Elapsed time is measured from LastStudiedAt (or now when the word was
// never studied) in whole days, rounded down. Intervals are fixed 24h
// periods, independent of now's location.
func NextDueDate(w domain.Word, now time.Time) time.Time {
	lastStudied := now
	if w.LastStudiedAt != nil {
		lastStudied = *w.LastStudiedAt
	}
	daysSince := int(math.Floor(now.Sub(lastStudied).Hours() / 24))

	return now.Add(time.Duration(intervalDays(w, daysSince)) * day)
}

func intervalDays(w domain.Word, daysSince int) int {
	switch w.Status {
	case domain.WordStatusMastered:
		return clamp(daysSince*2, masteredMinDays, masteredMaxDays)
	case domain.WordStatusLearning:
		if w.NeedsReview {
			return learningMinDays
		}
		return clamp(daysSince+1, learningMinDays, learningMaxDays)
	default:
		return unlearnedDays
	}
}

// ApplyOutcome returns a copy of w updated for one review outcome at now.
//
// On success the due date is computed from the word as it was before the
// outcome: its previous LastStudiedAt, NeedsReview flag and status (an
// unlearned word is scheduled as unlearned, then promoted). On failure the word is due again in one day and flagged for
// review; mastered words drop back to learning.
func ApplyOutcome(w domain.Word, success bool, now time.Time) domain.Word {
	out := w.Clone()
	studied := now
	out.LastStudiedAt = &studied

	if success {
		due := NextDueDate(w, now)
		out.ReviewDueAt = &due
		out.NeedsReview = false
		if w.Status == domain.WordStatusUnlearned {
			out.Status = domain.WordStatusLearning
		}
		return out
	}

	due := now.Add(failureDays * day)
	out.ReviewDueAt = &due
	out.NeedsReview = true
	if w.Status == domain.WordStatusMastered {
		out.Status = domain.WordStatusLearning
	}
	return out
}

// IsDue reports whether w should be offered for review at now.
func IsDue(w domain.Word, now time.Time) bool {
	if w.NeedsReview {
		return true
	}
	return w.ReviewDueAt != nil && !w.ReviewDueAt.After(now)
}

// DueWords returns the due subset of words, keeping input order.
func DueWords(words []domain.Word, now time.Time) []domain.Word {
	due := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if IsDue(w, now) {
			due = append(due, w)
		}
	}
	return due
}

// DueCount returns len(DueWords(words, now)) without allocating.
func DueCount(words []domain.Word, now time.Time) int {
	n := 0
	for _, w := range words {
		if IsDue(w, now) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
