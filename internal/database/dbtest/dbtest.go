// Package dbtest opens in-memory SQLite databases carrying the application schema.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// schema mirrors migrations/000001_init_schema.up.sql in SQLite dialect.
var schema = []string{
	`CREATE TABLE teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE roles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		seniority TEXT CHECK (seniority IN ('JR I', 'JR II', 'SSR I', 'SSR II', 'SR I', 'SR II')),
		contract TEXT CHECK (contract IN ('Employee', 'Contractor')),
		english_level TEXT CHECK (english_level IN ('A1', 'A2', 'B1', 'B2', 'C1', 'C2')),
		team_id INTEGER REFERENCES teams(id) ON DELETE SET NULL,
		role_id INTEGER REFERENCES roles(id) ON DELETE SET NULL,
		monthly_hours REAL NOT NULL DEFAULT 160 CHECK (monthly_hours >= 0),
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		repository TEXT,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		team_id INTEGER NOT NULL REFERENCES teams(id),
		status TEXT NOT NULL DEFAULT 'Active'
			CHECK (status IN ('Active', 'Inactive', 'Completed', 'On Hold')),
		start_date DATE,
		end_date DATE,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE github_statistics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		week_date DATE NOT NULL,
		additions INTEGER NOT NULL DEFAULT 0 CHECK (additions >= 0),
		deletions INTEGER NOT NULL DEFAULT 0 CHECK (deletions >= 0),
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (project_id, week_date)
	)`,
	`CREATE TABLE project_projected_hours (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		projected_hours REAL NOT NULL DEFAULT 0 CHECK (projected_hours >= 0),
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (project_id, year, month)
	)`,
}

// Open returns a fresh named in-memory database with foreign keys enforced.
// Every connection of the returned handle sees the same database; it is closed
// when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
