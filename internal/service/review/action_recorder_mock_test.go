package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ actionRecorder = &actionRecorderMock{}

type actionRecorderMock struct {
	RecordFunc func(ctx context.Context, sessionID uuid.UUID, kind domain.ActionKind, wordID *uuid.UUID) error

	calls struct {
		Record []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			Kind      domain.ActionKind
			WordID    *uuid.UUID
		}
	}
	lockRecord sync.RWMutex
}

func (mock *actionRecorderMock) Record(ctx context.Context, sessionID uuid.UUID, kind domain.ActionKind, wordID *uuid.UUID) error {
	if mock.RecordFunc == nil {
		panic("actionRecorderMock.RecordFunc: method is nil but actionRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		Kind      domain.ActionKind
		WordID    *uuid.UUID
	}{Ctx: ctx, SessionID: sessionID, Kind: kind, WordID: wordID}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, sessionID, kind, wordID)
}

func (mock *actionRecorderMock) RecordCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	Kind      domain.ActionKind
	WordID    *uuid.UUID
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
