package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc      func(ctx context.Context, w domain.Word) (uuid.UUID, error)
	UpdateFunc      func(ctx context.Context, w domain.Word) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	FindByLemmaFunc func(ctx context.Context, lemma string) (*domain.Word, error)
	SearchFunc      func(ctx context.Context, f domain.WordFilter) ([]domain.Word, int, error)
	GetAllFunc      func(ctx context.Context) ([]domain.Word, error)
	CountFunc       func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			W   domain.Word
		}
		Update []struct {
			Ctx context.Context
			W   domain.Word
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindByLemma []struct {
			Ctx   context.Context
			Lemma string
		}
		Search []struct {
			Ctx context.Context
			F   domain.WordFilter
		}
		GetAll []struct {
			Ctx context.Context
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockFindByLemma sync.RWMutex
	lockSearch      sync.RWMutex
	lockGetAll      sync.RWMutex
	lockCount       sync.RWMutex
}

func (mock *wordRepoMock) Create(ctx context.Context, w domain.Word) (uuid.UUID, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Update(ctx context.Context, w domain.Word) error {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{Ctx: ctx, W: w}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *wordRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
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

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
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

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) FindByLemma(ctx context.Context, lemma string) (*domain.Word, error) {
	if mock.FindByLemmaFunc == nil {
		panic("wordRepoMock.FindByLemmaFunc: method is nil but wordRepo.FindByLemma was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Lemma string
	}{Ctx: ctx, Lemma: lemma}
	mock.lockFindByLemma.Lock()
	mock.calls.FindByLemma = append(mock.calls.FindByLemma, callInfo)
	mock.lockFindByLemma.Unlock()
	return mock.FindByLemmaFunc(ctx, lemma)
}

func (mock *wordRepoMock) FindByLemmaCalls() []struct {
	Ctx   context.Context
	Lemma string
} {
	mock.lockFindByLemma.RLock()
	calls := mock.calls.FindByLemma
	mock.lockFindByLemma.RUnlock()
	return calls
}

func (mock *wordRepoMock) Search(ctx context.Context, f domain.WordFilter) ([]domain.Word, int, error) {
	if mock.SearchFunc == nil {
		panic("wordRepoMock.SearchFunc: method is nil but wordRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.WordFilter
	}{Ctx: ctx, F: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *wordRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.WordFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetAll(ctx context.Context) ([]domain.Word, error) {
	if mock.GetAllFunc == nil {
		panic("wordRepoMock.GetAllFunc: method is nil but wordRepo.GetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetAll.Lock()
	mock.calls.GetAll = append(mock.calls.GetAll, callInfo)
	mock.lockGetAll.Unlock()
	return mock.GetAllFunc(ctx)
}

func (mock *wordRepoMock) GetAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetAll.RLock()
	calls := mock.calls.GetAll
	mock.lockGetAll.RUnlock()
	return calls
}

func (mock *wordRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("wordRepoMock.CountFunc: method is nil but wordRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *wordRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
