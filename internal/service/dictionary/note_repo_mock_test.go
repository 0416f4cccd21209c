package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc       func(ctx context.Context, n domain.Note) error
	UpdateFunc       func(ctx context.Context, n domain.Note) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByWordIDFunc func(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			N   domain.Note
		}
		Update []struct {
			Ctx context.Context
			N   domain.Note
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByWordID []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByWordID sync.RWMutex
}

func (mock *noteRepoMock) Create(ctx context.Context, n domain.Note) error {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Note
	}{Ctx: ctx, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   domain.Note
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Update(ctx context.Context, n domain.Note) error {
	if mock.UpdateFunc == nil {
		panic("noteRepoMock.UpdateFunc: method is nil but noteRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Note
	}{Ctx: ctx, N: n}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, n)
}

func (mock *noteRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	N   domain.Note
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
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

func (mock *noteRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error) {
	if mock.ListByWordIDFunc == nil {
		panic("noteRepoMock.ListByWordIDFunc: method is nil but noteRepo.ListByWordID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockListByWordID.Lock()
	mock.calls.ListByWordID = append(mock.calls.ListByWordID, callInfo)
	mock.lockListByWordID.Unlock()
	return mock.ListByWordIDFunc(ctx, wordID)
}

func (mock *noteRepoMock) ListByWordIDCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockListByWordID.RLock()
	calls := mock.calls.ListByWordID
	mock.lockListByWordID.RUnlock()
	return calls
}
