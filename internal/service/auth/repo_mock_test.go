package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc func(ctx context.Context, s domain.Session) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (domain.Session, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Session domain.Session
		}
		Get []struct {
			ID uuid.UUID
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Session domain.Session }{Session: s})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ Session domain.Session } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID uuid.UUID }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *sessionRepoMock) GetCalls() []struct{ ID uuid.UUID } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateFunc func(sessionID uuid.UUID) (string, error)
	ValidateFunc func(token string) (uuid.UUID, error)

	calls struct {
		Generate []struct {
			SessionID uuid.UUID
		}
		Validate []struct {
			Token string
		}
	}
	lockGenerate sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *tokenManagerMock) Generate(sessionID uuid.UUID) (string, error) {
	if mock.GenerateFunc == nil {
		panic("tokenManagerMock.GenerateFunc: method is nil but tokenManager.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{ SessionID uuid.UUID }{SessionID: sessionID})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(sessionID)
}

func (mock *tokenManagerMock) GenerateCalls() []struct{ SessionID uuid.UUID } {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Validate(token string) (uuid.UUID, error) {
	if mock.ValidateFunc == nil {
		panic("tokenManagerMock.ValidateFunc: method is nil but tokenManager.Validate was just called")
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, struct{ Token string }{Token: token})
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *tokenManagerMock) ValidateCalls() []struct{ Token string } {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
