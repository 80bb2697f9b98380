// Command seeder loads the question catalog from CSV source files into the
// database. It is intended to be run offline before the server starts,
// and whenever the curated lists change.
//
// Flags:
//
//	--seeder-config  path to seeder YAML config file (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/catalogstore"
	"github.com/leettrack-dev/leettrack-backend/internal/app"
	"github.com/leettrack-dev/leettrack-backend/internal/config"
	"github.com/leettrack-dev/leettrack-backend/internal/seeder"
)

func main() {
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(appCfg.Database.DSN); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, catalogstore.New(pool), postgres.NewTxManager(pool))
	if err := pipeline.Run(ctx, seederCfg); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed successfully")
}
