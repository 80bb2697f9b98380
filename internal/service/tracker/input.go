package tracker

import (
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// UpdateQuestionInput holds the parameters for a partial question update.
// Nil fields are left unchanged.
type UpdateQuestionInput struct {
	Number     int
	Done       *bool
	Difficulty *domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i UpdateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.Number <= 0 {
		errs = append(errs, domain.FieldError{Field: "question_number", Message: "must be positive"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: `must be one of "", "Easy", "Medium", "Hard"`})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetTagsInput holds the parameters for a full tag replacement.
type SetTagsInput struct {
	Number int
	Tags   []string
}

// Validate checks all fields and collects all errors.
func (i SetTagsInput) Validate() error {
	var errs []domain.FieldError

	if i.Number <= 0 {
		errs = append(errs, domain.FieldError{Field: "question_number", Message: "must be positive"})
	}
	for _, tag := range i.Tags {
		if tag == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag names must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
