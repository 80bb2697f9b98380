package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/pkg/ctxutil"
)

// UpdateQuestion applies a partial state update to a catalog question and
// returns the resulting joined record. Fields left nil keep their stored
// values; a question written for the first time starts from the zero state.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) (domain.QuestionRecord, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.QuestionRecord{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.QuestionRecord{}, err
	}

	if _, err := s.catalog.Question(input.Number); err != nil {
		return domain.QuestionRecord{}, err
	}

	var record domain.QuestionRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.states.Upsert(txCtx, input.Number, domain.QuestionStateUpdate{
			Done:       input.Done,
			Difficulty: input.Difficulty,
		}); err != nil {
			return fmt.Errorf("upsert question state: %w", err)
		}

		var readErr error
		record, readErr = s.recordFor(txCtx, input.Number)
		return readErr
	})
	if err != nil {
		return domain.QuestionRecord{}, err
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("user", sess.Username),
		slog.Int("question_number", input.Number),
		slog.Bool("done", record.Done),
		slog.String("difficulty", record.Difficulty.String()),
	)

	return record, nil
}
