// Package migrate applies the SQL schema migrations with golang-migrate.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/config"
)

// GetMigrationsPath returns the default path to migrations directory.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Migrate applies pending migrations from GetMigrationsPath.
func Migrate(ctx context.Context, db *gorm.DB, logger *zap.SugaredLogger) error {
	return Up(ctx, db, GetMigrationsPath(), logger)
}

// Up applies every pending migration found in dir.
func Up(ctx context.Context, db *gorm.DB, dir string, logger *zap.SugaredLogger) error {
	return run(ctx, db, dir, logger, func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts every applied migration found in dir.
func Down(ctx context.Context, db *gorm.DB, dir string, logger *zap.SugaredLogger) error {
	return run(ctx, db, dir, logger, func(m *migrate.Migrate) error { return m.Down() })
}

func run(
	ctx context.Context,
	db *gorm.DB,
	dir string,
	logger *zap.SugaredLogger,
	apply func(m *migrate.Migrate) error,
) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	migrationsPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A dedicated connection keeps Close from closing the shared pool.
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(migrationsPath), "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warnw("Failed to close migrator", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debugw("Schema is up to date", "path", migrationsPath)
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Infow("Migrations applied", "version", version, "dirty", dirty, "path", migrationsPath)

	return nil
}
