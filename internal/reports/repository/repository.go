// Package repository loads people for reports.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	reportModel "github.com/festy23/palantir/internal/reports/model"
)

// Repository defines report data access operations.
type Repository interface {
	// People returns every person with team and role names.
	People(ctx context.Context) ([]reportModel.PersonRow, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new report repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) People(ctx context.Context) ([]reportModel.PersonRow, error) {
	var people []reportModel.PersonRow
	err := r.db.WithContext(ctx).
		Table("people p").
		Select("p.id, p.name, p.seniority, t.name AS team_name, ro.name AS role_name").
		Joins("LEFT JOIN teams t ON t.id = p.team_id").
		Joins("LEFT JOIN roles ro ON ro.id = p.role_id").
		Order("p.id ASC").
		Scan(&people).Error
	if err != nil {
		return nil, fmt.Errorf("load people: %w", err)
	}
	r.logger.Debugw("report people loaded", "count", len(people))
	return people, nil
}
