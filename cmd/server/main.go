// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	capacityRouter "github.com/festy23/palantir/internal/capacity/router"
	clientRouter "github.com/festy23/palantir/internal/client/router"
	codemetricsRouter "github.com/festy23/palantir/internal/codemetrics/router"
	"github.com/festy23/palantir/internal/config"
	"github.com/festy23/palantir/internal/database/database"
	"github.com/festy23/palantir/internal/database/migrate"
	githubstatsRouter "github.com/festy23/palantir/internal/githubstats/router"
	"github.com/festy23/palantir/internal/health"
	"github.com/festy23/palantir/internal/middleware"
	personRouter "github.com/festy23/palantir/internal/person/router"
	projectRouter "github.com/festy23/palantir/internal/project/router"
	projectedhoursRouter "github.com/festy23/palantir/internal/projectedhours/router"
	reportsRouter "github.com/festy23/palantir/internal/reports/router"
	roleRouter "github.com/festy23/palantir/internal/role/router"
	teamRouter "github.com/festy23/palantir/internal/team/router"
	"github.com/festy23/palantir/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("Failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(ctx, db, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	r, err := newRouter(db, &cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("Server listening", "address", srv.Addr, "gin_mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	log.Infow("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

func newRouter(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	health.RegisterRoutes(r, db, log)
	teamRouter.RegisterRoutes(r, db, log)
	roleRouter.RegisterRoutes(r, db, log)
	clientRouter.RegisterRoutes(r, db, log)
	personRouter.RegisterRoutes(r, db, log)
	projectRouter.RegisterRoutes(r, db, log)
	projectedhoursRouter.RegisterRoutes(r, db, log)
	capacityRouter.RegisterRoutes(r, db, log)
	reportsRouter.RegisterRoutes(r, db, log)
	codemetricsRouter.RegisterRoutes(r, db, log)
	if err := githubstatsRouter.RegisterRoutes(r, db, cfg, log); err != nil {
		return nil, fmt.Errorf("register statistics routes: %w", err)
	}
	return r, nil
}
