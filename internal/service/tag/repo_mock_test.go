package tag

import (
	"context"
	"sync"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Tag, error)
	CreateFunc func(ctx context.Context, name string) error
	DeleteFunc func(ctx context.Context, name string) error

	calls struct {
		List   []struct{}
		Create []struct {
			Name string
		}
		Delete []struct {
			Name string
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *tagRepoMock) List(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *tagRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tagRepoMock) Create(ctx context.Context, name string) error {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Name string }{Name: name})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *tagRepoMock) CreateCalls() []struct{ Name string } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tagRepoMock) Delete(ctx context.Context, name string) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ Name string }{Name: name})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, name)
}

func (mock *tagRepoMock) DeleteCalls() []struct{ Name string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
