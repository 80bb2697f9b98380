// Package github fetches public GitHub user profiles. The server never
// calls it: the OAuth handshake lives in an external collaborator. It
// exists for operator tooling (cmd/mksession) that needs to resolve a
// login to its numeric id and avatar without doing the full OAuth dance.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Profile is the subset of a GitHub user we care about.
type Profile struct {
	ID        int64
	Login     string
	AvatarURL string
}

// Provider fetches user profiles from the GitHub REST API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider against the public GitHub API.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "github"),
	}
}

type apiUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// FetchUser fetches the public profile for a login.
// Returns nil, nil if the user does not exist (HTTP 404).
func (p *Provider) FetchUser(ctx context.Context, login string) (*Profile, error) {
	reqURL := p.baseURL + "/users/" + url.PathEscape(login)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.doWithRetry(ctx, req, login)
	if err != nil {
		p.log.ErrorContext(ctx, "github request failed",
			slog.String("login", login), slog.String("error", err.Error()))
		return nil, fmt.Errorf("github: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github: read body: %w", err)
	}

	var user apiUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("github: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "github response",
		slog.String("login", user.Login),
		slog.Int64("id", user.ID),
	)

	return &Profile{
		ID:        user.ID,
		Login:     user.Login,
		AvatarURL: user.AvatarURL,
	}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, login string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "github retry", slog.String("login", login), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}
