package domain

import "time"

// ProgressKey is the fixed key of the UserProgress singleton.
const ProgressKey = "progress"

// UserProgress is a derived snapshot of learning progress. It can always
// be rebuilt from words and sessions.
type UserProgress struct {
	TotalWords        int
	MasteredWords     int
	LearningWords     int
	StreakDays        int
	TotalStudyMinutes int
	LastActivityAt    *time.Time
	Heatmap           map[string]int
	UpdatedAt         time.Time
}

// DayActivity aggregates activity for a single calendar day.
type DayActivity struct {
	Date          string
	Sessions      int
	Minutes       int
	WordsReviewed int
}

// DayTrend summarizes study time and words covered on a calendar day.
type DayTrend struct {
	Date      string
	Minutes   int
	WordCount int
}

// DayScore is the average quiz score for a calendar day.
type DayScore struct {
	Date    string
	Quizzes int
	Average int
}
