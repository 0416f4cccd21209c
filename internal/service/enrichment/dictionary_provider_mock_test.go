package enrichment

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordbook/internal/provider"
)

var _ dictionaryProvider = &dictionaryProviderMock{}

type dictionaryProviderMock struct {
	LookupFunc func(ctx context.Context, word string) (*provider.Entry, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryProviderMock) Lookup(ctx context.Context, word string) (*provider.Entry, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryProviderMock.LookupFunc: method is nil but dictionaryProvider.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *dictionaryProviderMock) LookupCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
