package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated identity established by an external OAuth
// collaborator. The core only requires that a stable identity exists;
// how it was obtained is not its concern.
type Session struct {
	ID        uuid.UUID
	GitHubID  int64
	Username  string
	AvatarURL string
	CreatedAt time.Time
}
