package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	CurrentUser(ctx context.Context) (*domain.Session, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves session endpoints. The auth middleware has already
// resolved the token by the time these run.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type meResponse struct {
	GitHubID  int64  `json:"github_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		GitHubID:  sess.GitHubID,
		Username:  sess.Username,
		AvatarURL: sess.AvatarURL,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
