package progress

import "time"

const dateLayout = "2006-01-02"

// DayStart returns the start of the current day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// NextDayStart returns the start of the next day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	dayStart := DayStart(now, tz)
	// AddDate handles DST correctly, Add(24h) does not
	next := dayStart.In(tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz).UTC()
}

// DayKey formats the calendar day of t in tz as YYYY-MM-DD.
func DayKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(dateLayout)
}

// windowStart returns the start of the first day of a window of days
// calendar days ending today.
func windowStart(now time.Time, tz *time.Location, days int) time.Time {
	start := DayStart(now, tz).In(tz).AddDate(0, 0, -(days - 1))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, tz).UTC()
}
