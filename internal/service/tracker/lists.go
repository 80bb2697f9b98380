package tracker

import (
	"context"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// Lists returns summaries of all configured lists.
func (s *Service) Lists(ctx context.Context) []domain.ListInfo {
	return s.catalog.Lists()
}

// ListQuestions returns the questions of one list in list order, each
// joined with its current state.
func (s *Service) ListQuestions(ctx context.Context, name string) ([]domain.QuestionRecord, error) {
	list, err := s.catalog.List(name)
	if err != nil {
		return nil, err
	}
	return s.recordsFor(ctx, list.Numbers)
}
