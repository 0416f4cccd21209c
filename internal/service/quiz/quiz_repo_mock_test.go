package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc        func(ctx context.Context, q domain.Quiz, questions []domain.QuizQuestion) error
	UpdateScoreFunc   func(ctx context.Context, id uuid.UUID, score int) error
	UpdateAnswerFunc  func(ctx context.Context, q domain.QuizQuestion) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	GetQuestionFunc   func(ctx context.Context, id uuid.UUID) (*domain.QuizQuestion, error)
	ListQuestionsFunc func(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			Q         domain.Quiz
			Questions []domain.QuizQuestion
		}
		UpdateScore []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Score int
		}
		UpdateAnswer []struct {
			Ctx context.Context
			Q   domain.QuizQuestion
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetQuestion []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListQuestions []struct {
			Ctx    context.Context
			QuizID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockUpdateScore   sync.RWMutex
	lockUpdateAnswer  sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetQuestion   sync.RWMutex
	lockListQuestions sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, q domain.Quiz, questions []domain.QuizQuestion) error {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Q         domain.Quiz
		Questions []domain.QuizQuestion
	}{Ctx: ctx, Q: q, Questions: questions}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q, questions)
}

func (mock *quizRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	Q         domain.Quiz
	Questions []domain.QuizQuestion
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quizRepoMock) UpdateScore(ctx context.Context, id uuid.UUID, score int) error {
	if mock.UpdateScoreFunc == nil {
		panic("quizRepoMock.UpdateScoreFunc: method is nil but quizRepo.UpdateScore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Score int
	}{Ctx: ctx, ID: id, Score: score}
	mock.lockUpdateScore.Lock()
	mock.calls.UpdateScore = append(mock.calls.UpdateScore, callInfo)
	mock.lockUpdateScore.Unlock()
	return mock.UpdateScoreFunc(ctx, id, score)
}

func (mock *quizRepoMock) UpdateScoreCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Score int
} {
	mock.lockUpdateScore.RLock()
	calls := mock.calls.UpdateScore
	mock.lockUpdateScore.RUnlock()
	return calls
}

func (mock *quizRepoMock) UpdateAnswer(ctx context.Context, q domain.QuizQuestion) error {
	if mock.UpdateAnswerFunc == nil {
		panic("quizRepoMock.UpdateAnswerFunc: method is nil but quizRepo.UpdateAnswer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.QuizQuestion
	}{Ctx: ctx, Q: q}
	mock.lockUpdateAnswer.Lock()
	mock.calls.UpdateAnswer = append(mock.calls.UpdateAnswer, callInfo)
	mock.lockUpdateAnswer.Unlock()
	return mock.UpdateAnswerFunc(ctx, q)
}

func (mock *quizRepoMock) UpdateAnswerCalls() []struct {
	Ctx context.Context
	Q   domain.QuizQuestion
} {
	mock.lockUpdateAnswer.RLock()
	calls := mock.calls.UpdateAnswer
	mock.lockUpdateAnswer.RUnlock()
	return calls
}

func (mock *quizRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	if mock.GetByIDFunc == nil {
		panic("quizRepoMock.GetByIDFunc: method is nil but quizRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *quizRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *quizRepoMock) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.QuizQuestion, error) {
	if mock.GetQuestionFunc == nil {
		panic("quizRepoMock.GetQuestionFunc: method is nil but quizRepo.GetQuestion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetQuestion.Lock()
	mock.calls.GetQuestion = append(mock.calls.GetQuestion, callInfo)
	mock.lockGetQuestion.Unlock()
	return mock.GetQuestionFunc(ctx, id)
}

func (mock *quizRepoMock) GetQuestionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetQuestion.RLock()
	calls := mock.calls.GetQuestion
	mock.lockGetQuestion.RUnlock()
	return calls
}

func (mock *quizRepoMock) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error) {
	if mock.ListQuestionsFunc == nil {
		panic("quizRepoMock.ListQuestionsFunc: method is nil but quizRepo.ListQuestions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		QuizID uuid.UUID
	}{Ctx: ctx, QuizID: quizID}
	mock.lockListQuestions.Lock()
	mock.calls.ListQuestions = append(mock.calls.ListQuestions, callInfo)
	mock.lockListQuestions.Unlock()
	return mock.ListQuestionsFunc(ctx, quizID)
}

func (mock *quizRepoMock) ListQuestionsCalls() []struct {
	Ctx    context.Context
	QuizID uuid.UUID
} {
	mock.lockListQuestions.RLock()
	calls := mock.calls.ListQuestions
	mock.lockListQuestions.RUnlock()
	return calls
}
