// Package tracker implements progress tracking over the question catalog:
// list and intersection reads, per-question state updates, tag assignment,
// and completion metrics.
package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leettrack-dev/leettrack-backend/internal/catalog"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

type stateRepo interface {
	Get(ctx context.Context, number int) (domain.QuestionState, error)
	GetByNumbers(ctx context.Context, numbers []int) (map[int]domain.QuestionState, error)
	Upsert(ctx context.Context, number int, params domain.QuestionStateUpdate) error
	ReplaceTags(ctx context.Context, number int, tags []string) error
	CountDone(ctx context.Context, numbers []int) (int, error)
}

type tagRepo interface {
	Exist(ctx context.Context, names []string) (map[string]bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides question tracking operations.
type Service struct {
	catalog *catalog.Catalog
	states  stateRepo
	tags    tagRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new tracker service.
func NewService(
	log *slog.Logger,
	cat *catalog.Catalog,
	states stateRepo,
	tags tagRepo,
	tx txManager,
) *Service {
	return &Service{
		catalog: cat,
		states:  states,
		tags:    tags,
		tx:      tx,
		log:     log.With("service", "tracker"),
	}
}

// recordsFor joins the given catalog question numbers with their current
// state, preserving the order of numbers. Questions without stored state
// get the zero state.
func (s *Service) recordsFor(ctx context.Context, numbers []int) ([]domain.QuestionRecord, error) {
	states, err := s.states.GetByNumbers(ctx, numbers)
	if err != nil {
		return nil, fmt.Errorf("get question states: %w", err)
	}

	records := make([]domain.QuestionRecord, 0, len(numbers))
	for _, n := range numbers {
		q, err := s.catalog.Question(n)
		if err != nil {
			return nil, err
		}
		st, ok := states[n]
		if !ok {
			st = domain.ZeroState(n)
		}
		records = append(records, domain.QuestionRecord{
			Number:     q.Number,
			Problem:    q.Problem,
			Done:       st.Done,
			Difficulty: st.Difficulty,
			Tags:       st.Tags,
		})
	}
	return records, nil
}

// recordFor joins one catalog question with its current state.
func (s *Service) recordFor(ctx context.Context, number int) (domain.QuestionRecord, error) {
	q, err := s.catalog.Question(number)
	if err != nil {
		return domain.QuestionRecord{}, err
	}

	st, err := s.states.Get(ctx, number)
	if err != nil {
		return domain.QuestionRecord{}, fmt.Errorf("get question state: %w", err)
	}

	return domain.QuestionRecord{
		Number:     q.Number,
		Problem:    q.Problem,
		Done:       st.Done,
		Difficulty: st.Difficulty,
		Tags:       st.Tags,
	}, nil
}
