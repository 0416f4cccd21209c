package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a generated set of questions over library words.
type Quiz struct {
	ID           uuid.UUID
	Mode         QuizMode
	CreatedAt    time.Time
	QuestionIDs  []uuid.UUID
	ScorePercent int
}

// QuizQuestion is a single prompt of a quiz together with the user's answer.
type QuizQuestion struct {
	ID            uuid.UUID
	QuizID        uuid.UUID
	WordID        uuid.UUID
	Prompt        string
	Choices       []string
	CorrectAnswer string
	UserAnswer    string
	IsCorrect     bool
}
