package auth

import (
	"strings"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// CreateSessionInput holds the verified identity a new session is minted for.
type CreateSessionInput struct {
	GitHubID  int64
	Username  string
	AvatarURL string
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.GitHubID <= 0 {
		errs = append(errs, domain.FieldError{Field: "github_id", Message: "must be positive"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
