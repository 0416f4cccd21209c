package reminder

import (
	"context"
	"sync"
)

var _ dueCounter = &dueCounterMock{}

type dueCounterMock struct {
	GetDueCountFunc func(ctx context.Context) (int, error)

	calls struct {
		GetDueCount []struct {
			Ctx context.Context
		}
	}
	lockGetDueCount sync.RWMutex
}

func (mock *dueCounterMock) GetDueCount(ctx context.Context) (int, error) {
	if mock.GetDueCountFunc == nil {
		panic("dueCounterMock.GetDueCountFunc: method is nil but dueCounter.GetDueCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetDueCount.Lock()
	mock.calls.GetDueCount = append(mock.calls.GetDueCount, callInfo)
	mock.lockGetDueCount.Unlock()
	return mock.GetDueCountFunc(ctx)
}

func (mock *dueCounterMock) GetDueCountCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetDueCount.RLock()
	calls := mock.calls.GetDueCount
	mock.lockGetDueCount.RUnlock()
	return calls
}
