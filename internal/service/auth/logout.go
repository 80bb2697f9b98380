package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/pkg/ctxutil"
)

// CurrentUser returns the session of the authenticated caller.
func (s *Service) CurrentUser(ctx context.Context) (*domain.Session, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// Logout revokes the caller's session. Idempotent: a session already
// revoked by a concurrent logout is not an error.
func (s *Service) Logout(ctx context.Context) error {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.log.InfoContext(ctx, "session revoked",
		slog.String("session_id", sess.ID.String()),
		slog.String("user", sess.Username),
	)

	return nil
}
