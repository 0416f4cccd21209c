package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordbook/internal/domain"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetFunc             func(ctx context.Context) (*domain.UserProgress, error)
	RefreshFunc         func(ctx context.Context) (*domain.UserProgress, error)
	LearningTrendsFunc  func(ctx context.Context, days int) ([]domain.DayTrend, error)
	HeatmapFunc         func(ctx context.Context, days int) (map[string]int, error)
	DailyActivityFunc   func(ctx context.Context, date string) (*domain.DayActivity, error)
	QuizScoreTrendsFunc func(ctx context.Context, days int) ([]domain.DayScore, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Refresh []struct {
			Ctx context.Context
		}
		LearningTrends []struct {
			Ctx  context.Context
			Days int
		}
		Heatmap []struct {
			Ctx  context.Context
			Days int
		}
		DailyActivity []struct {
			Ctx  context.Context
			Date string
		}
		QuizScoreTrends []struct {
			Ctx  context.Context
			Days int
		}
	}
	lockGet             sync.RWMutex
	lockRefresh         sync.RWMutex
	lockLearningTrends  sync.RWMutex
	lockHeatmap         sync.RWMutex
	lockDailyActivity   sync.RWMutex
	lockQuizScoreTrends sync.RWMutex
}

func (mock *progressServiceMock) Get(ctx context.Context) (*domain.UserProgress, error) {
	if mock.GetFunc == nil {
		panic("progressServiceMock.GetFunc: method is nil but progressService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *progressServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *progressServiceMock) Refresh(ctx context.Context) (*domain.UserProgress, error) {
	if mock.RefreshFunc == nil {
		panic("progressServiceMock.RefreshFunc: method is nil but progressService.Refresh was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx)
}

func (mock *progressServiceMock) RefreshCalls() []struct {
	Ctx context.Context
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *progressServiceMock) LearningTrends(ctx context.Context, days int) ([]domain.DayTrend, error) {
	if mock.LearningTrendsFunc == nil {
		panic("progressServiceMock.LearningTrendsFunc: method is nil but progressService.LearningTrends was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockLearningTrends.Lock()
	mock.calls.LearningTrends = append(mock.calls.LearningTrends, callInfo)
	mock.lockLearningTrends.Unlock()
	return mock.LearningTrendsFunc(ctx, days)
}

func (mock *progressServiceMock) LearningTrendsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockLearningTrends.RLock()
	calls := mock.calls.LearningTrends
	mock.lockLearningTrends.RUnlock()
	return calls
}

func (mock *progressServiceMock) Heatmap(ctx context.Context, days int) (map[string]int, error) {
	if mock.HeatmapFunc == nil {
		panic("progressServiceMock.HeatmapFunc: method is nil but progressService.Heatmap was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockHeatmap.Lock()
	mock.calls.Heatmap = append(mock.calls.Heatmap, callInfo)
	mock.lockHeatmap.Unlock()
	return mock.HeatmapFunc(ctx, days)
}

func (mock *progressServiceMock) HeatmapCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockHeatmap.RLock()
	calls := mock.calls.Heatmap
	mock.lockHeatmap.RUnlock()
	return calls
}

func (mock *progressServiceMock) DailyActivity(ctx context.Context, date string) (*domain.DayActivity, error) {
	if mock.DailyActivityFunc == nil {
		panic("progressServiceMock.DailyActivityFunc: method is nil but progressService.DailyActivity was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{Ctx: ctx, Date: date}
	mock.lockDailyActivity.Lock()
	mock.calls.DailyActivity = append(mock.calls.DailyActivity, callInfo)
	mock.lockDailyActivity.Unlock()
	return mock.DailyActivityFunc(ctx, date)
}

func (mock *progressServiceMock) DailyActivityCalls() []struct {
	Ctx  context.Context
	Date string
} {
	mock.lockDailyActivity.RLock()
	calls := mock.calls.DailyActivity
	mock.lockDailyActivity.RUnlock()
	return calls
}

func (mock *progressServiceMock) QuizScoreTrends(ctx context.Context, days int) ([]domain.DayScore, error) {
	if mock.QuizScoreTrendsFunc == nil {
		panic("progressServiceMock.QuizScoreTrendsFunc: method is nil but progressService.QuizScoreTrends was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockQuizScoreTrends.Lock()
	mock.calls.QuizScoreTrends = append(mock.calls.QuizScoreTrends, callInfo)
	mock.lockQuizScoreTrends.Unlock()
	return mock.QuizScoreTrendsFunc(ctx, days)
}

func (mock *progressServiceMock) QuizScoreTrendsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockQuizScoreTrends.RLock()
	calls := mock.calls.QuizScoreTrends
	mock.lockQuizScoreTrends.RUnlock()
	return calls
}
