// Package main runs one statistics collection over every project with a
// repository and exits. It is meant for a system scheduler in place of the
// HTTP trigger.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/festy23/palantir/internal/config"
	"github.com/festy23/palantir/internal/database/database"
	"github.com/festy23/palantir/internal/database/migrate"
	githubstatsRouter "github.com/festy23/palantir/internal/githubstats/router"
	"github.com/festy23/palantir/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "collect: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(ctx, db, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	svc, err := githubstatsRouter.NewService(db, &cfg, log)
	if err != nil {
		return err
	}

	collected, err := svc.ProcessAllProjects(ctx)
	if err != nil {
		return fmt.Errorf("collect statistics: %w", err)
	}
	log.Infow("Collection finished", "collected", collected)
	return nil
}
