package importer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ jobRepo = &jobRepoMock{}

type jobRepoMock struct {
	CreateFunc     func(ctx context.Context, j domain.ImportJob) error
	UpdateFunc     func(ctx context.Context, j domain.ImportJob) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.ImportJob, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			J   domain.ImportJob
		}
		Update []struct {
			Ctx context.Context
			J   domain.ImportJob
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *jobRepoMock) Create(ctx context.Context, j domain.ImportJob) error {
	if mock.CreateFunc == nil {
		panic("jobRepoMock.CreateFunc: method is nil but jobRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		J   domain.ImportJob
	}{Ctx: ctx, J: j}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, j)
}

func (mock *jobRepoMock) CreateCalls() []struct {
	Ctx context.Context
	J   domain.ImportJob
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *jobRepoMock) Update(ctx context.Context, j domain.ImportJob) error {
	if mock.UpdateFunc == nil {
		panic("jobRepoMock.UpdateFunc: method is nil but jobRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		J   domain.ImportJob
	}{Ctx: ctx, J: j}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, j)
}

func (mock *jobRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	J   domain.ImportJob
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *jobRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	if mock.GetByIDFunc == nil {
		panic("jobRepoMock.GetByIDFunc: method is nil but jobRepo.GetByID was just called")
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

func (mock *jobRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *jobRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	if mock.ListRecentFunc == nil {
		panic("jobRepoMock.ListRecentFunc: method is nil but jobRepo.ListRecent was just called")
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

func (mock *jobRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
