package progress

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	ListSinceFunc func(ctx context.Context, from time.Time) ([]domain.Quiz, error)

	calls struct {
		ListSince []struct {
			Ctx  context.Context
			From time.Time
		}
	}
	lockListSince sync.RWMutex
}

func (mock *quizRepoMock) ListSince(ctx context.Context, from time.Time) ([]domain.Quiz, error) {
	if mock.ListSinceFunc == nil {
		panic("quizRepoMock.ListSinceFunc: method is nil but quizRepo.ListSince was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
	}{Ctx: ctx, From: from}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, from)
}

func (mock *quizRepoMock) ListSinceCalls() []struct {
	Ctx  context.Context
	From time.Time
} {
	mock.lockListSince.RLock()
	calls := mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}
