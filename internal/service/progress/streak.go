package progress

import "time"

// Streak counts consecutive activity days ending today, or ending
// yesterday when today has no activity yet. active holds day keys
// (YYYY-MM-DD) and today is interpreted in its own location.
func Streak(active map[string]bool, today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if !active[day.Format(dateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format(dateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
