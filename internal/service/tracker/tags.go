package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/pkg/ctxutil"
)

// QuestionTags returns the tags of one catalog question, sorted by name.
func (s *Service) QuestionTags(ctx context.Context, number int) ([]string, error) {
	if _, err := s.catalog.Question(number); err != nil {
		return nil, err
	}

	st, err := s.states.Get(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get question state: %w", err)
	}
	return st.Tags, nil
}

// SetQuestionTags replaces the full tag set of a catalog question and
// returns the resulting joined record. Duplicates in the input collapse to
// the first occurrence; every tag must already be registered. Validation
// and the replace run in one transaction, so a rejected request leaves the
// stored set untouched.
func (s *Service) SetQuestionTags(ctx context.Context, input SetTagsInput) (domain.QuestionRecord, error) {
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

	tags := dedup(input.Tags)

	var record domain.QuestionRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if len(tags) > 0 {
			found, err := s.tags.Exist(txCtx, tags)
			if err != nil {
				return fmt.Errorf("check tags: %w", err)
			}
			var unknown []string
			for _, tag := range tags {
				if !found[tag] {
					unknown = append(unknown, tag)
				}
			}
			if len(unknown) > 0 {
				return domain.NewValidationError("tags",
					"unknown tags: "+strings.Join(unknown, ", "))
			}
		}

		if err := s.states.ReplaceTags(txCtx, input.Number, tags); err != nil {
			return fmt.Errorf("replace question tags: %w", err)
		}

		var readErr error
		record, readErr = s.recordFor(txCtx, input.Number)
		return readErr
	})
	if err != nil {
		return domain.QuestionRecord{}, err
	}

	// The response reflects the accepted input order, not storage order.
	record.Tags = tags

	s.log.InfoContext(ctx, "question tags replaced",
		slog.String("user", sess.Username),
		slog.Int("question_number", input.Number),
		slog.Int("tag_count", len(tags)),
	)

	return record, nil
}

// dedup collapses duplicates keeping first occurrence order. Always
// returns a non-nil slice.
func dedup(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
