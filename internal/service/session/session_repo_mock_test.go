package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc         func(ctx context.Context, s domain.LearningSession) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error)
	EndFunc            func(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMs int64) error
	AppendActionFunc   func(ctx context.Context, sessionID uuid.UUID, a domain.SessionAction) error
	ListRecentFunc     func(ctx context.Context, limit int) ([]domain.LearningSession, error)
	ListActiveFunc     func(ctx context.Context) ([]domain.LearningSession, error)
	ListEndedSinceFunc func(ctx context.Context, from time.Time) ([]domain.LearningSession, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.LearningSession
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		End []struct {
			Ctx        context.Context
			ID         uuid.UUID
			EndedAt    time.Time
			DurationMs int64
		}
		AppendAction []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			A         domain.SessionAction
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
		ListActive []struct {
			Ctx context.Context
		}
		ListEndedSince []struct {
			Ctx  context.Context
			From time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockEnd            sync.RWMutex
	lockAppendAction   sync.RWMutex
	lockListRecent     sync.RWMutex
	lockListActive     sync.RWMutex
	lockListEndedSince sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.LearningSession) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.LearningSession
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.LearningSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
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

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) End(ctx context.Context, id uuid.UUID, endedAt time.Time, durationMs int64) error {
	if mock.EndFunc == nil {
		panic("sessionRepoMock.EndFunc: method is nil but sessionRepo.End was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		EndedAt    time.Time
		DurationMs int64
	}{Ctx: ctx, ID: id, EndedAt: endedAt, DurationMs: durationMs}
	mock.lockEnd.Lock()
	mock.calls.End = append(mock.calls.End, callInfo)
	mock.lockEnd.Unlock()
	return mock.EndFunc(ctx, id, endedAt, durationMs)
}

func (mock *sessionRepoMock) EndCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	EndedAt    time.Time
	DurationMs int64
} {
	mock.lockEnd.RLock()
	calls := mock.calls.End
	mock.lockEnd.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AppendAction(ctx context.Context, sessionID uuid.UUID, a domain.SessionAction) error {
	if mock.AppendActionFunc == nil {
		panic("sessionRepoMock.AppendActionFunc: method is nil but sessionRepo.AppendAction was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		A         domain.SessionAction
	}{Ctx: ctx, SessionID: sessionID, A: a}
	mock.lockAppendAction.Lock()
	mock.calls.AppendAction = append(mock.calls.AppendAction, callInfo)
	mock.lockAppendAction.Unlock()
	return mock.AppendActionFunc(ctx, sessionID, a)
}

func (mock *sessionRepoMock) AppendActionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	A         domain.SessionAction
} {
	mock.lockAppendAction.RLock()
	calls := mock.calls.AppendAction
	mock.lockAppendAction.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.LearningSession, error) {
	if mock.ListRecentFunc == nil {
		panic("sessionRepoMock.ListRecentFunc: method is nil but sessionRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *sessionRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListActive(ctx context.Context) ([]domain.LearningSession, error) {
	if mock.ListActiveFunc == nil {
		panic("sessionRepoMock.ListActiveFunc: method is nil but sessionRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *sessionRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListEndedSince(ctx context.Context, from time.Time) ([]domain.LearningSession, error) {
	if mock.ListEndedSinceFunc == nil {
		panic("sessionRepoMock.ListEndedSinceFunc: method is nil but sessionRepo.ListEndedSince was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
	}{Ctx: ctx, From: from}
	mock.lockListEndedSince.Lock()
	mock.calls.ListEndedSince = append(mock.calls.ListEndedSince, callInfo)
	mock.lockListEndedSince.Unlock()
	return mock.ListEndedSinceFunc(ctx, from)
}

func (mock *sessionRepoMock) ListEndedSinceCalls() []struct {
	Ctx  context.Context
	From time.Time
} {
	mock.lockListEndedSince.RLock()
	calls := mock.calls.ListEndedSince
	mock.lockListEndedSince.RUnlock()
	return calls
}
