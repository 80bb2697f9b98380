// Package auth implements session management: minting sessions, resolving
// tokens to sessions, and logout. The GitHub OAuth handshake happens
// outside this backend; identities arrive here already verified.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokenManager interface {
	Generate(sessionID uuid.UUID) (string, error)
	Validate(token string) (uuid.UUID, error)
}

// Service provides session operations.
type Service struct {
	sessions sessionRepo
	tokens   tokenManager
	log      *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, sessions sessionRepo, tokens tokenManager) *Service {
	return &Service{
		sessions: sessions,
		tokens:   tokens,
		log:      log.With("service", "auth"),
	}
}
