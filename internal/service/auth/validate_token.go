package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// ValidateToken resolves a session token to its live session. Both a bad
// signature and a revoked session row come back as ErrUnauthorized, so the
// transport layer answers 401 without leaking which check failed.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.Session, error) {
	sessionID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("session revoked: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}
