package reminder

import (
	"context"
	"sync"
)

var _ Notifier = &NotifierMock{}

type NotifierMock struct {
	NotifyFunc func(ctx context.Context, due int) error

	calls struct {
		Notify []struct {
			Ctx context.Context
			Due int
		}
	}
	lockNotify sync.RWMutex
}

func (mock *NotifierMock) Notify(ctx context.Context, due int) error {
	if mock.NotifyFunc == nil {
		panic("NotifierMock.NotifyFunc: method is nil but Notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Due int
	}{Ctx: ctx, Due: due}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, due)
}

func (mock *NotifierMock) NotifyCalls() []struct {
	Ctx context.Context
	Due int
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
