package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// CreateSession mints a new session for a verified identity and returns it
// together with its signed token.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (domain.Session, string, error) {
	if err := input.Validate(); err != nil {
		return domain.Session{}, "", err
	}

	session := domain.Session{
		ID:        uuid.New(),
		GitHubID:  input.GitHubID,
		Username:  input.Username,
		AvatarURL: input.AvatarURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, "", fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokens.Generate(session.ID)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", session.ID.String()),
		slog.String("user", session.Username),
	)

	return session, token, nil
}
