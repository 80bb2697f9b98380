// Package tag implements management of the tag registry.
package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

// Service provides tag registry operations.
type Service struct {
	tags tagRepo
	log  *slog.Logger
}

// NewService creates a new tag service.
func NewService(log *slog.Logger, tags tagRepo) *Service {
	return &Service{
		tags: tags,
		log:  log.With("service", "tag"),
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
