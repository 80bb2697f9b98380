package tracker

import (
	"context"
	"sync"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var _ stateRepo = &stateRepoMock{}

type stateRepoMock struct {
	GetFunc          func(ctx context.Context, number int) (domain.QuestionState, error)
	GetByNumbersFunc func(ctx context.Context, numbers []int) (map[int]domain.QuestionState, error)
	UpsertFunc       func(ctx context.Context, number int, params domain.QuestionStateUpdate) error
	ReplaceTagsFunc  func(ctx context.Context, number int, tags []string) error
	CountDoneFunc    func(ctx context.Context, numbers []int) (int, error)

	calls struct {
		Get []struct {
			Number int
		}
		GetByNumbers []struct {
			Numbers []int
		}
		Upsert []struct {
			Number int
			Params domain.QuestionStateUpdate
		}
		ReplaceTags []struct {
			Number int
			Tags   []string
		}
		CountDone []struct {
			Numbers []int
		}
	}
	lockGet          sync.RWMutex
	lockGetByNumbers sync.RWMutex
	lockUpsert       sync.RWMutex
	lockReplaceTags  sync.RWMutex
	lockCountDone    sync.RWMutex
}

func (mock *stateRepoMock) Get(ctx context.Context, number int) (domain.QuestionState, error) {
	if mock.GetFunc == nil {
		panic("stateRepoMock.GetFunc: method is nil but stateRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Number int }{Number: number})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, number)
}

func (mock *stateRepoMock) GetCalls() []struct{ Number int } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *stateRepoMock) GetByNumbers(ctx context.Context, numbers []int) (map[int]domain.QuestionState, error) {
	if mock.GetByNumbersFunc == nil {
		panic("stateRepoMock.GetByNumbersFunc: method is nil but stateRepo.GetByNumbers was just called")
	}
	mock.lockGetByNumbers.Lock()
	mock.calls.GetByNumbers = append(mock.calls.GetByNumbers, struct{ Numbers []int }{Numbers: numbers})
	mock.lockGetByNumbers.Unlock()
	return mock.GetByNumbersFunc(ctx, numbers)
}

func (mock *stateRepoMock) GetByNumbersCalls() []struct{ Numbers []int } {
	mock.lockGetByNumbers.RLock()
	calls := mock.calls.GetByNumbers
	mock.lockGetByNumbers.RUnlock()
	return calls
}

func (mock *stateRepoMock) Upsert(ctx context.Context, number int, params domain.QuestionStateUpdate) error {
	if mock.UpsertFunc == nil {
		panic("stateRepoMock.UpsertFunc: method is nil but stateRepo.Upsert was just called")
	}
	callInfo := struct {
		Number int
		Params domain.QuestionStateUpdate
	}{Number: number, Params: params}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, number, params)
}

func (mock *stateRepoMock) UpsertCalls() []struct {
	Number int
	Params domain.QuestionStateUpdate
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *stateRepoMock) ReplaceTags(ctx context.Context, number int, tags []string) error {
	if mock.ReplaceTagsFunc == nil {
		panic("stateRepoMock.ReplaceTagsFunc: method is nil but stateRepo.ReplaceTags was just called")
	}
	callInfo := struct {
		Number int
		Tags   []string
	}{Number: number, Tags: tags}
	mock.lockReplaceTags.Lock()
	mock.calls.ReplaceTags = append(mock.calls.ReplaceTags, callInfo)
	mock.lockReplaceTags.Unlock()
	return mock.ReplaceTagsFunc(ctx, number, tags)
}

func (mock *stateRepoMock) ReplaceTagsCalls() []struct {
	Number int
	Tags   []string
} {
	mock.lockReplaceTags.RLock()
	calls := mock.calls.ReplaceTags
	mock.lockReplaceTags.RUnlock()
	return calls
}

func (mock *stateRepoMock) CountDone(ctx context.Context, numbers []int) (int, error) {
	if mock.CountDoneFunc == nil {
		panic("stateRepoMock.CountDoneFunc: method is nil but stateRepo.CountDone was just called")
	}
	mock.lockCountDone.Lock()
	mock.calls.CountDone = append(mock.calls.CountDone, struct{ Numbers []int }{Numbers: numbers})
	mock.lockCountDone.Unlock()
	return mock.CountDoneFunc(ctx, numbers)
}

func (mock *stateRepoMock) CountDoneCalls() []struct{ Numbers []int } {
	mock.lockCountDone.RLock()
	calls := mock.calls.CountDone
	mock.lockCountDone.RUnlock()
	return calls
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	ExistFunc func(ctx context.Context, names []string) (map[string]bool, error)

	calls struct {
		Exist []struct {
			Names []string
		}
	}
	lockExist sync.RWMutex
}

func (mock *tagRepoMock) Exist(ctx context.Context, names []string) (map[string]bool, error) {
	if mock.ExistFunc == nil {
		panic("tagRepoMock.ExistFunc: method is nil but tagRepo.Exist was just called")
	}
	mock.lockExist.Lock()
	mock.calls.Exist = append(mock.calls.Exist, struct{ Names []string }{Names: names})
	mock.lockExist.Unlock()
	return mock.ExistFunc(ctx, names)
}

func (mock *tagRepoMock) ExistCalls() []struct{ Names []string } {
	mock.lockExist.RLock()
	calls := mock.calls.Exist
	mock.lockExist.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
