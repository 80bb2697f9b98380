package tag

import (
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// CreateTagInput holds the parameters for registering a tag.
type CreateTagInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "tag_name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "tag_name", Message: "max 100 characters"})
	}
	// The delimiter is reserved: question tags travel as one joined string.
	if strings.Contains(name, domain.TagDelimiter) {
		errs = append(errs, domain.FieldError{Field: "tag_name", Message: `must not contain "; "`})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTagInput holds the parameters for removing a tag.
type DeleteTagInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i DeleteTagInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("tag_name", "required")
	}
	return nil
}
