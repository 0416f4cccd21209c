package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

const (
	maxQuizWords = 100
	choiceCount  = 4
	fillerChoice = "其他選項"
)

// Score is the detailed result of a quiz.
type Score struct {
	QuizID               uuid.UUID
	TotalQuestions       int
	CorrectAnswers       int
	IncorrectAnswers     int
	ScorePercent         int
	IncorrectQuestionIDs []uuid.UUID
}

// ---------------------------------------------------------------------------
// Generate
// ---------------------------------------------------------------------------

// Generate builds a quiz with one question per existing word. Unknown ids
// are ignored; a quiz with no resolvable word is rejected.
func (s *Service) Generate(ctx context.Context, mode domain.QuizMode, wordIDs []uuid.UUID) (*domain.Quiz, error) {
	var errs []domain.FieldError
	if !mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be multiple-choice, fill-in or spell"})
	}
	ids := domain.DedupIDs(wordIDs)
	if len(ids) == 0 {
		errs = append(errs, domain.FieldError{Field: "word_ids", Message: "required"})
	} else if len(ids) > maxQuizWords {
		errs = append(errs, domain.FieldError{Field: "word_ids", Message: fmt.Sprintf("too many (max %d)", maxQuizWords)})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	words := make([]domain.Word, 0, len(ids))
	for _, id := range ids {
		w, err := s.words.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get word %s: %w", id, err)
		}
		if w != nil {
			words = append(words, *w)
		}
	}
	if len(words) == 0 {
		return nil, domain.NewValidationError("word_ids", "no existing words")
	}

	q := domain.Quiz{
		ID:        uuid.New(),
		Mode:      mode,
		CreatedAt: s.clock.Now().UTC(),
	}

	questions := make([]domain.QuizQuestion, 0, len(words))
	for _, w := range words {
		var qq domain.QuizQuestion
		switch mode {
		case domain.QuizModeMultipleChoice:
			qq = s.multipleChoice(w, words)
		case domain.QuizModeFillIn:
			qq = fillIn(w)
		case domain.QuizModeSpell:
			qq = spelling(w)
		}
		qq.ID = uuid.New()
		qq.QuizID = q.ID
		qq.WordID = w.ID
		questions = append(questions, qq)
		q.QuestionIDs = append(q.QuestionIDs, qq.ID)
	}

	if err := s.quizzes.Create(ctx, q, questions); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("quiz_id", q.ID.String()),
		slog.String("mode", mode.String()),
		slog.Int("questions", len(questions)),
	)
	return &q, nil
}

// meaning is what the learner is asked to recognize: the own-language
// definition when present, otherwise the English one.
func meaning(w domain.Word) string {
	if d := strings.TrimSpace(w.DefinitionLocal); d != "" {
		return d
	}
	return strings.TrimSpace(w.DefinitionEn)
}

func (s *Service) multipleChoice(w domain.Word, all []domain.Word) domain.QuizQuestion {
	answer := meaning(w)

	var wrong []string
	seen := map[string]struct{}{answer: {}}
	for _, other := range all {
		if other.ID == w.ID {
			continue
		}
		m := meaning(other)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		wrong = append(wrong, m)
	}
	s.shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	if len(wrong) > choiceCount-1 {
		wrong = wrong[:choiceCount-1]
	}
	for len(wrong) < choiceCount-1 {
		wrong = append(wrong, fillerChoice)
	}

	choices := append([]string{answer}, wrong...)
	s.shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	return domain.QuizQuestion{
		Prompt:        fmt.Sprintf("What is the meaning of %q?", w.Lemma),
		Choices:       choices,
		CorrectAnswer: answer,
	}
}

func fillIn(w domain.Word) domain.QuizQuestion {
	return domain.QuizQuestion{
		Prompt:        fmt.Sprintf("Fill in the blank: %q means _____ in English.", meaning(w)),
		Choices:       []string{},
		CorrectAnswer: w.Lemma,
	}
}

func spelling(w domain.Word) domain.QuizQuestion {
	return domain.QuizQuestion{
		Prompt:        fmt.Sprintf("Spell the word that means %q:", meaning(w)),
		Choices:       []string{},
		CorrectAnswer: strings.ToLower(w.Lemma),
	}
}

// ---------------------------------------------------------------------------
// Answers and scoring
// ---------------------------------------------------------------------------

// SubmitAnswer records the answer to a question and reports whether it is
// correct. Answers compare trimmed and case-insensitively.
func (s *Service) SubmitAnswer(ctx context.Context, questionID uuid.UUID, answer string) (*domain.QuizQuestion, error) {
	q, err := s.quizzes.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}

	q.UserAnswer = answer
	q.IsCorrect = strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))

	if err := s.quizzes.UpdateAnswer(ctx, *q); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}

	s.log.DebugContext(ctx, "answer submitted",
		slog.String("question_id", questionID.String()),
		slog.Bool("correct", q.IsCorrect),
	)
	return q, nil
}

// CalculateScore scores a quiz from its answered questions and stores the
// rounded percentage on the quiz.
func (s *Service) CalculateScore(ctx context.Context, quizID uuid.UUID) (*Score, error) {
	if _, err := s.Get(ctx, quizID); err != nil {
		return nil, err
	}

	questions, err := s.quizzes.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	score := &Score{
		QuizID:               quizID,
		TotalQuestions:       len(questions),
		IncorrectQuestionIDs: []uuid.UUID{},
	}
	for _, q := range questions {
		if q.IsCorrect {
			score.CorrectAnswers++
		} else {
			score.IncorrectAnswers++
			score.IncorrectQuestionIDs = append(score.IncorrectQuestionIDs, q.ID)
		}
	}
	if score.TotalQuestions > 0 {
		score.ScorePercent = int(math.Round(float64(score.CorrectAnswers) / float64(score.TotalQuestions) * 100))
	}

	if err := s.quizzes.UpdateScore(ctx, quizID, score.ScorePercent); err != nil {
		return nil, fmt.Errorf("update score: %w", err)
	}
	return score, nil
}

// Get returns a quiz.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	q, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("quiz %s: %w", id, domain.ErrNotFound)
	}
	return q, nil
}

// Questions returns the questions of a quiz in creation order.
func (s *Service) Questions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error) {
	if _, err := s.Get(ctx, quizID); err != nil {
		return nil, err
	}
	questions, err := s.quizzes.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}
