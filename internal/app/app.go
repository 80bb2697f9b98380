package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/catalogstore"
	sessionrepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/session"
	staterepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/state"
	tagrepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/tag"
	"github.com/leettrack-dev/leettrack-backend/internal/auth"
	"github.com/leettrack-dev/leettrack-backend/internal/catalog"
	"github.com/leettrack-dev/leettrack-backend/internal/config"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	authservice "github.com/leettrack-dev/leettrack-backend/internal/service/auth"
	tagservice "github.com/leettrack-dev/leettrack-backend/internal/service/tag"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tracker"
	"github.com/leettrack-dev/leettrack-backend/internal/transport/middleware"
	"github.com/leettrack-dev/leettrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, loads the question catalog, wires services and transport,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	questions, lists, err := catalogstore.New(pool).Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	inters := make([]domain.Intersection, 0, len(cfg.Intersections))
	for _, in := range cfg.Intersections {
		inters = append(inters, domain.Intersection{
			ID:          in.ID,
			DisplayName: in.DisplayName,
			List1:       in.List1,
			List2:       in.List2,
		})
	}

	cat, err := catalog.New(questions, lists, inters)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	logger.Info("catalog loaded",
		slog.Int("questions", len(questions)),
		slog.Int("lists", len(lists)),
		slog.Int("intersections", len(inters)),
	)

	tx := postgres.NewTxManager(pool)
	states := staterepo.New(pool)
	tags := tagrepo.New(pool)
	sessions := sessionrepo.New(pool)

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.SessionTTL)

	trackerSvc := tracker.NewService(logger, cat, states, tags, tx)
	tagSvc := tagservice.NewService(logger, tags)
	authSvc := authservice.NewService(logger, sessions, tokens)

	router := rest.NewRouter(
		rest.NewTrackerHandler(trackerSvc, logger),
		rest.NewTagHandler(tagSvc, logger),
		rest.NewAuthHandler(authSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		middleware.Auth(authSvc),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
