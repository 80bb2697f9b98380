package tracker

import (
	"context"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// Intersections returns all configured list intersections.
func (s *Service) Intersections(ctx context.Context) []domain.Intersection {
	return s.catalog.Intersections()
}

// IntersectionQuestions returns the questions common to the intersection's
// two lists, in list1's order, each joined with its current state.
func (s *Service) IntersectionQuestions(ctx context.Context, id string) ([]domain.QuestionRecord, error) {
	numbers, err := s.catalog.IntersectionNumbers(id)
	if err != nil {
		return nil, err
	}
	return s.recordsFor(ctx, numbers)
}
