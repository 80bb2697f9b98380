package tag

import (
	"context"
	"fmt"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// ListTags returns all registered tags sorted by name.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
