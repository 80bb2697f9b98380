package tracker

import (
	"context"
	"fmt"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// Metrics computes completion statistics for one list from current state.
// An empty list yields {0, 0, 0} without touching the store.
func (s *Service) Metrics(ctx context.Context, name string) (domain.Metrics, error) {
	list, err := s.catalog.List(name)
	if err != nil {
		return domain.Metrics{}, err
	}

	if len(list.Numbers) == 0 {
		return domain.Metrics{}, nil
	}

	completed, err := s.states.CountDone(ctx, list.Numbers)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("count done: %w", err)
	}

	total := len(list.Numbers)
	return domain.Metrics{
		Total:      total,
		Completed:  completed,
		Percentage: float64(completed) / float64(total) * 100,
	}, nil
}
