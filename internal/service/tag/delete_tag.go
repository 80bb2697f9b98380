package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/pkg/ctxutil"
)

// DeleteTag removes a tag for the authenticated user. Every question link
// to the tag disappears in the same statement under the FK cascade.
func (s *Service) DeleteTag(ctx context.Context, input DeleteTagInput) error {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	name := trimmed(input.Name)
	if err := s.tags.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("user", sess.Username),
		slog.String("tag_name", name),
	)

	return nil
}
