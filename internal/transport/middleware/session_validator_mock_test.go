package middleware

import (
	"context"
	"sync"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var _ sessionValidator = &sessionValidatorMock{}

type sessionValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.Session, error)

	calls struct {
		ValidateToken []struct {
			Token string
		}
	}
	lockValidateToken sync.RWMutex
}

func (mock *sessionValidatorMock) ValidateToken(ctx context.Context, token string) (*domain.Session, error) {
	if mock.ValidateTokenFunc == nil {
		panic("sessionValidatorMock.ValidateTokenFunc: method is nil but sessionValidator.ValidateToken was just called")
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, struct{ Token string }{Token: token})
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *sessionValidatorMock) ValidateTokenCalls() []struct{ Token string } {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
