// Package service provides business logic layer for projected hours.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	phModel "github.com/festy23/palantir/internal/projectedhours/model"
	"github.com/festy23/palantir/internal/projectedhours/repository"
)

// Service defines projected-hours business operations.
type Service interface {
	// BulkUpsert validates and applies entries atomically and returns the
	// number of distinct (project, year, month) keys written. An empty batch
	// is a no-op.
	BulkUpsert(ctx context.Context, entries []phModel.Entry) (int, error)
	Upsert(ctx context.Context, entry phModel.Entry) (*phModel.ProjectedHours, error)
	ListByProject(ctx context.Context, projectID int64) ([]phModel.ProjectedHours, error)
	ListByMonth(ctx context.Context, year, month int) ([]phModel.ProjectedHours, error)
	ListByYear(ctx context.Context, year int) ([]phModel.ProjectedHours, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new projected-hours service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) BulkUpsert(ctx context.Context, entries []phModel.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	unique := phModel.Dedupe(entries)
	if err := s.repo.Upsert(ctx, unique); err != nil {
		return 0, err
	}

	s.logger.Infow("Projected hours saved", "entries", len(entries), "written", len(unique))
	return len(unique), nil
}

func (s *service) Upsert(ctx context.Context, entry phModel.Entry) (*phModel.ProjectedHours, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, []phModel.Entry{entry}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, entry.ProjectID, entry.Year, entry.Month)
}

func (s *service) ListByProject(ctx context.Context, projectID int64) ([]phModel.ProjectedHours, error) {
	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project_id must be a positive integer", phModel.ErrInvalidProjectedHours)
	}
	return s.repo.ListByProject(ctx, projectID)
}

func (s *service) ListByMonth(ctx context.Context, year, month int) ([]phModel.ProjectedHours, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.repo.ListByMonth(ctx, year, month)
}

func (s *service) ListByYear(ctx context.Context, year int) ([]phModel.ProjectedHours, error) {
	if err := validatePeriod(year, 1); err != nil {
		return nil, err
	}
	return s.repo.ListByYear(ctx, year)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Projected hours deleted", "id", id)
	return nil
}

func validatePeriod(year, month int) error {
	return phModel.Entry{ProjectID: 1, Year: year, Month: month}.Validate()
}
