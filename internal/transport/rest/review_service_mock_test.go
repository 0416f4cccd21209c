package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	RecordReviewOutcomeFunc func(ctx context.Context, input review.RecordOutcomeInput) (*domain.Word, error)
	GetDueWordsFunc         func(ctx context.Context, input review.GetDueInput) ([]domain.Word, error)
	GetDueCountFunc         func(ctx context.Context) (int, error)

	calls struct {
		RecordReviewOutcome []struct {
			Ctx   context.Context
			Input review.RecordOutcomeInput
		}
		GetDueWords []struct {
			Ctx   context.Context
			Input review.GetDueInput
		}
		GetDueCount []struct {
			Ctx context.Context
		}
	}
	lockRecordReviewOutcome sync.RWMutex
	lockGetDueWords         sync.RWMutex
	lockGetDueCount         sync.RWMutex
}

func (mock *reviewServiceMock) RecordReviewOutcome(ctx context.Context, input review.RecordOutcomeInput) (*domain.Word, error) {
	if mock.RecordReviewOutcomeFunc == nil {
		panic("reviewServiceMock.RecordReviewOutcomeFunc: method is nil but reviewService.RecordReviewOutcome was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.RecordOutcomeInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordReviewOutcome.Lock()
	mock.calls.RecordReviewOutcome = append(mock.calls.RecordReviewOutcome, callInfo)
	mock.lockRecordReviewOutcome.Unlock()
	return mock.RecordReviewOutcomeFunc(ctx, input)
}

func (mock *reviewServiceMock) RecordReviewOutcomeCalls() []struct {
	Ctx   context.Context
	Input review.RecordOutcomeInput
} {
	mock.lockRecordReviewOutcome.RLock()
	calls := mock.calls.RecordReviewOutcome
	mock.lockRecordReviewOutcome.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetDueWords(ctx context.Context, input review.GetDueInput) ([]domain.Word, error) {
	if mock.GetDueWordsFunc == nil {
		panic("reviewServiceMock.GetDueWordsFunc: method is nil but reviewService.GetDueWords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.GetDueInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDueWords.Lock()
	mock.calls.GetDueWords = append(mock.calls.GetDueWords, callInfo)
	mock.lockGetDueWords.Unlock()
	return mock.GetDueWordsFunc(ctx, input)
}

func (mock *reviewServiceMock) GetDueWordsCalls() []struct {
	Ctx   context.Context
	Input review.GetDueInput
} {
	mock.lockGetDueWords.RLock()
	calls := mock.calls.GetDueWords
	mock.lockGetDueWords.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetDueCount(ctx context.Context) (int, error) {
	if mock.GetDueCountFunc == nil {
		panic("reviewServiceMock.GetDueCountFunc: method is nil but reviewService.GetDueCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetDueCount.Lock()
	mock.calls.GetDueCount = append(mock.calls.GetDueCount, callInfo)
	mock.lockGetDueCount.Unlock()
	return mock.GetDueCountFunc(ctx)
}

func (mock *reviewServiceMock) GetDueCountCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetDueCount.RLock()
	calls := mock.calls.GetDueCount
	mock.lockGetDueCount.RUnlock()
	return calls
}
