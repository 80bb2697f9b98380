// Command server runs the question tracker HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) plus environment overrides;
// see internal/config. The server applies pending migrations on startup
// and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/leettrack-dev/leettrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
