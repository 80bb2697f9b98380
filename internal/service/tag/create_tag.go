package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/pkg/ctxutil"
)

// CreateTag registers a new tag for the authenticated user.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (domain.Tag, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.Tag{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Tag{}, err
	}

	name := trimmed(input.Name)
	if err := s.tags.Create(ctx, name); err != nil {
		return domain.Tag{}, fmt.Errorf("create tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("user", sess.Username),
		slog.String("tag_name", name),
	)

	return domain.Tag{Name: name}, nil
}
