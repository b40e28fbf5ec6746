// Package repository provides data access layer for projected hours.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/palantir/internal/database/dberr"
	phModel "github.com/festy23/palantir/internal/projectedhours/model"
)

// Repository defines projected-hours data access operations.
type Repository interface {
	// Upsert writes every entry in a single transaction, inserting missing
	// (project, year, month) rows and overwriting the hours of existing ones.
	// Entries must not repeat a key.
	Upsert(ctx context.Context, entries []phModel.Entry) error

	// Get returns the row stored for a (project, year, month) key.
	Get(ctx context.Context, projectID int64, year, month int) (*phModel.ProjectedHours, error)

	ListByProject(ctx context.Context, projectID int64) ([]phModel.ProjectedHours, error)
	ListByMonth(ctx context.Context, year, month int) ([]phModel.ProjectedHours, error)
	ListByYear(ctx context.Context, year int) ([]phModel.ProjectedHours, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new projected-hours repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Upsert(ctx context.Context, entries []phModel.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]phModel.ProjectedHours, len(entries))
	for i, e := range entries {
		rows[i] = phModel.ProjectedHours{
			ProjectID:      e.ProjectID,
			Year:           e.Year,
			Month:          e.Month,
			ProjectedHours: e.ProjectedHours,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"projected_hours", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return phModel.ErrProjectNotFound
		}
		return fmt.Errorf("upsert projected hours: %w", err)
	}

	r.logger.Debugw("projected hours upserted", "count", len(rows))
	return nil
}

func (r *repository) Get(ctx context.Context, projectID int64, year, month int) (*phModel.ProjectedHours, error) {
	var rows []phModel.ProjectedHours
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND year = ? AND month = ?", projectID, year, month).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get projected hours: %w", err)
	}
	if len(rows) == 0 {
		return nil, phModel.ErrNotFound
	}
	return &rows[0], nil
}

func (r *repository) list(ctx context.Context, op string, query string, args ...interface{}) ([]phModel.ProjectedHours, error) {
	rows := []phModel.ProjectedHours{}
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("year ASC, month ASC, project_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

func (r *repository) ListByProject(ctx context.Context, projectID int64) ([]phModel.ProjectedHours, error) {
	return r.list(ctx, "list projected hours by project", "project_id = ?", projectID)
}

func (r *repository) ListByMonth(ctx context.Context, year, month int) ([]phModel.ProjectedHours, error) {
	return r.list(ctx, "list projected hours by month", "year = ? AND month = ?", year, month)
}

func (r *repository) ListByYear(ctx context.Context, year int) ([]phModel.ProjectedHours, error) {
	return r.list(ctx, "list projected hours by year", "year = ?", year)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&phModel.ProjectedHours{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete projected hours: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return phModel.ErrNotFound
	}
	return nil
}
