// Package repository provides data access layer for weekly statistics.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/palantir/internal/githubstats/model"
)

// Repository defines weekly statistics data access operations.
type Repository interface {
	// InsertIfAbsent stores stat unless a row for its (project, week) exists.
	// It reports whether a row was inserted; an existing row is never updated.
	InsertIfAbsent(ctx context.Context, stat *model.WeeklyStatistic) (bool, error)

	// ListProjectsWithRepository returns projects with a non-empty repository reference.
	ListProjectsWithRepository(ctx context.Context) ([]model.ProjectRepository, error)

	// GetProjectRepository returns the repository reference of a project, empty when unset.
	GetProjectRepository(ctx context.Context, projectID int64) (*model.ProjectRepository, error)

	// ListByProject returns stored rows of a project, newest week first.
	ListByProject(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) InsertIfAbsent(ctx context.Context, stat *model.WeeklyStatistic) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "week_date"}},
			DoNothing: true,
		}).
		Create(stat)
	if result.Error != nil {
		return false, fmt.Errorf("insert weekly statistic: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *repository) ListProjectsWithRepository(ctx context.Context) ([]model.ProjectRepository, error) {
	var projects []model.ProjectRepository
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("id, name, repository").
		Where("repository IS NOT NULL AND repository <> ''").
		Order("id ASC").
		Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects with repository: %w", err)
	}
	return projects, nil
}

func (r *repository) GetProjectRepository(ctx context.Context, projectID int64) (*model.ProjectRepository, error) {
	var projects []model.ProjectRepository
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("id, name, COALESCE(repository, '') AS repository").
		Where("id = ?", projectID).
		Limit(1).
		Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("get project repository: %w", err)
	}
	if len(projects) == 0 {
		return nil, model.ErrProjectNotFound
	}
	return &projects[0], nil
}

func (r *repository) ListByProject(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error) {
	stats := []model.WeeklyStatistic{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("week_date DESC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("list weekly statistics: %w", err)
	}
	return stats, nil
}
