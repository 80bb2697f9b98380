// Command mksession creates a session row for a GitHub identity and prints
// the signed token. The OAuth handshake itself happens in an external
// collaborator; this command is the operator-side way to mint a session
// from its outcome (or to create a local dev session).
//
// Flags:
//
//	--username    GitHub login (required)
//	--github-id   numeric GitHub user id (fetched from the GitHub API when omitted)
//	--avatar-url  avatar URL (fetched from the GitHub API when omitted)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	sessionrepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/session"
	"github.com/leettrack-dev/leettrack-backend/internal/adapter/provider/github"
	"github.com/leettrack-dev/leettrack-backend/internal/app"
	"github.com/leettrack-dev/leettrack-backend/internal/auth"
	"github.com/leettrack-dev/leettrack-backend/internal/config"
	authservice "github.com/leettrack-dev/leettrack-backend/internal/service/auth"
)

func main() {
	githubIDFlag := flag.Int64("github-id", 0, "numeric GitHub user id")
	usernameFlag := flag.String("username", "", "GitHub login")
	avatarFlag := flag.String("avatar-url", "", "avatar URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	githubID := *githubIDFlag
	avatarURL := *avatarFlag
	if githubID == 0 || avatarURL == "" {
		profile, err := github.NewProvider(logger).FetchUser(ctx, *usernameFlag)
		if err != nil {
			logger.Error("fetch github profile", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if profile == nil {
			logger.Error("github user not found", slog.String("username", *usernameFlag))
			os.Exit(1)
		}
		if githubID == 0 {
			githubID = profile.ID
		}
		if avatarURL == "" {
			avatarURL = profile.AvatarURL
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.SessionTTL)
	svc := authservice.NewService(logger, sessionrepo.New(pool), tokens)

	sess, token, err := svc.CreateSession(ctx, authservice.CreateSessionInput{
		GitHubID:  githubID,
		Username:  *usernameFlag,
		AvatarURL: avatarURL,
	})
	if err != nil {
		logger.Error("create session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("session created",
		slog.String("session_id", sess.ID.String()),
		slog.String("username", sess.Username),
	)
	fmt.Println(token)
}
