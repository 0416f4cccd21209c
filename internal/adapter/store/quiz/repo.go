// Package quiz persists quizzes and their questions.
package quiz

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

const (
	quizzesTable   = "quizzes"
	questionsTable = "quiz_questions"
)

var (
	quizColumns     = []string{"id", "mode", "created_at", "question_ids", "score_percent"}
	questionColumns = []string{"id", "quiz_id", "word_id", "prompt", "choices", "correct_answer", "user_answer", "is_correct"}
)

// Repo provides quiz persistence.
type Repo struct {
	db *store.DB
}

// New creates a new quiz repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a quiz and its questions. Callers wrap it in a transaction
// when both must land together.
func (r *Repo) Create(ctx context.Context, q domain.Quiz, questions []domain.QuizQuestion) error {
	ids := q.QuestionIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	encoded, err := store.EncodeJSON(ids)
	if err != nil {
		return fmt.Errorf("quiz %s: %w", q.ID, err)
	}

	query, args, err := r.db.Builder().
		Insert(quizzesTable).
		Columns(quizColumns...).
		Values(q.ID, string(q.Mode), store.NormalizeTime(q.CreatedAt), encoded, q.ScorePercent).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert quiz: %w", err)
	}
	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "quiz", q.ID)
	}

	if len(questions) == 0 {
		return nil
	}

	ins := r.db.Builder().Insert(questionsTable).Columns(questionColumns...)
	for _, qq := range questions {
		choices, err := store.EncodeJSON(nonNil(qq.Choices))
		if err != nil {
			return fmt.Errorf("quiz question %s: %w", qq.ID, err)
		}
		ins = ins.Values(qq.ID, qq.QuizID, qq.WordID, qq.Prompt, choices, qq.CorrectAnswer, qq.UserAnswer, qq.IsCorrect)
	}

	query, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert quiz questions: %w", err)
	}
	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "quiz questions", q.ID)
	}
	return nil
}

// UpdateScore stores the computed score of a quiz.
func (r *Repo) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	query, args, err := r.db.Builder().
		Update(quizzesTable).
		Set("score_percent", score).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update quiz score: %w", err)
	}
	return r.execOne(ctx, "quiz", id, query, args)
}

// UpdateAnswer stores the user's answer and its correctness.
func (r *Repo) UpdateAnswer(ctx context.Context, q domain.QuizQuestion) error {
	query, args, err := r.db.Builder().
		Update(questionsTable).
		Set("user_answer", q.UserAnswer).
		Set("is_correct", q.IsCorrect).
		Where(sq.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update quiz answer: %w", err)
	}
	return r.execOne(ctx, "quiz question", q.ID, query, args)
}

// GetByID returns the quiz or nil, nil.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	quizzes, err := r.listQuizzes(ctx, "quiz",
		r.db.Builder().Select(quizColumns...).From(quizzesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, nil
	}
	return &quizzes[0], nil
}

// ListSince returns quizzes created at or after from, oldest first.
func (r *Repo) ListSince(ctx context.Context, from time.Time) ([]domain.Quiz, error) {
	return r.listQuizzes(ctx, "quizzes since",
		r.db.Builder().Select(quizColumns...).From(quizzesTable).
			Where(sq.GtOrEq{"created_at": store.NormalizeTime(from)}).
			OrderBy("created_at", "id"))
}

// GetQuestion returns one question or nil, nil.
func (r *Repo) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.QuizQuestion, error) {
	qs, err := r.listQuestions(ctx, "quiz question",
		r.db.Builder().Select(questionColumns...).From(questionsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, nil
	}
	return &qs[0], nil
}

// ListQuestions returns the questions of a quiz in the quiz's question order.
// Questions missing from the quiz's id list come last.
func (r *Repo) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error) {
	q, err := r.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("quiz %s: %w", quizID, domain.ErrNotFound)
	}

	qs, err := r.listQuestions(ctx, "quiz questions",
		r.db.Builder().Select(questionColumns...).From(questionsTable).
			Where(sq.Eq{"quiz_id": quizID}).
			OrderBy("id"))
	if err != nil {
		return nil, err
	}

	pos := make(map[uuid.UUID]int, len(q.QuestionIDs))
	for i, id := range q.QuestionIDs {
		pos[id] = i
	}
	ordered := make([]domain.QuizQuestion, 0, len(qs))
	var rest []domain.QuizQuestion
	slots := make([]*domain.QuizQuestion, len(q.QuestionIDs))
	for i := range qs {
		if p, ok := pos[qs[i].ID]; ok {
			slots[p] = &qs[i]
			continue
		}
		rest = append(rest, qs[i])
	}
	for _, s := range slots {
		if s != nil {
			ordered = append(ordered, *s)
		}
	}
	return append(ordered, rest...), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) execOne(ctx context.Context, entity string, id uuid.UUID, query string, args []any) error {
	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) listQuizzes(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.Quiz, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var (
			q    domain.Quiz
			mode string
			ids  []byte
		)
		if err := rows.Scan(&q.ID, &mode, &q.CreatedAt, &ids, &q.ScorePercent); err != nil {
			return nil, store.MapError(err, op, "")
		}
		q.Mode = domain.QuizMode(mode)
		q.CreatedAt = store.NormalizeTime(q.CreatedAt)
		q.QuestionIDs = []uuid.UUID{}
		if err := store.DecodeJSON(ids, &q.QuestionIDs); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, q.ID, err)
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return quizzes, nil
}

func (r *Repo) listQuestions(ctx context.Context, op string, b sq.SelectBuilder) ([]domain.QuizQuestion, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := store.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.MapError(err, op, "")
	}
	defer rows.Close()

	qs := []domain.QuizQuestion{}
	for rows.Next() {
		var (
			q       domain.QuizQuestion
			choices []byte
		)
		if err := rows.Scan(&q.ID, &q.QuizID, &q.WordID, &q.Prompt, &choices, &q.CorrectAnswer, &q.UserAnswer, &q.IsCorrect); err != nil {
			return nil, store.MapError(err, op, "")
		}
		q.Choices = []string{}
		if err := store.DecodeJSON(choices, &q.Choices); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, q.ID, err)
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MapError(err, op, "")
	}
	return qs, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
