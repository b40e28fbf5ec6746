// Package service orchestrates commit-activity ingestion.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/githubstats/model"
	"github.com/festy23/palantir/internal/githubstats/provider"
	"github.com/festy23/palantir/internal/githubstats/repository"
)

// Fetcher retrieves weekly code frequency of a repository.
type Fetcher interface {
	FetchWeeklyActivity(ctx context.Context, owner, name string) ([]model.WeeklyActivity, error)
}

// Service defines ingestion operations.
type Service interface {
	// FetchWeeklyActivity returns the active weeks of ref. Provider failures
	// are logged and yield an empty result.
	FetchWeeklyActivity(ctx context.Context, ref model.RepositoryRef) []model.WeeklyActivity

	// ProcessProject stores the weeks of repositoryRef not yet recorded for
	// the project and returns only the new rows.
	ProcessProject(ctx context.Context, projectID int64, repositoryRef string) ([]model.WeeklyStatistic, error)

	// ProcessProjectByID runs ProcessProject with the stored repository of a project.
	ProcessProjectByID(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error)

	// ProcessAllProjects processes every project with a repository, one at a
	// time, and returns the number of new rows. Per-project failures are
	// logged and skipped; only failing to enumerate projects is returned.
	ProcessAllProjects(ctx context.Context) (int, error)

	// GetProjectStatistics returns stored rows of a project, newest first.
	GetProjectStatistics(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error)
}

type service struct {
	repo    repository.Repository
	fetcher Fetcher
	loc     *time.Location
	logger  *zap.SugaredLogger
}

// New creates a new ingestion service. Weeks are normalized in loc.
func New(repo repository.Repository, fetcher Fetcher, loc *time.Location, logger *zap.SugaredLogger) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: repo, fetcher: fetcher, loc: loc, logger: logger}
}

func (s *service) FetchWeeklyActivity(ctx context.Context, ref model.RepositoryRef) []model.WeeklyActivity {
	return s.fetch(ctx, ref, s.logger)
}

func (s *service) fetch(ctx context.Context, ref model.RepositoryRef, logger *zap.SugaredLogger) []model.WeeklyActivity {
	weeks, err := s.fetcher.FetchWeeklyActivity(ctx, ref.Owner, ref.Name)
	switch {
	case err == nil:
		logger.Infow("Fetched weekly activity", "repository", ref.String(), "weeks", len(weeks))
		return weeks
	case errors.Is(err, provider.ErrRepositoryNotFound), errors.Is(err, provider.ErrTooManyCommits):
		logger.Warnw("Skipping repository", "repository", ref.String(), "reason", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warnw("Fetching weekly activity interrupted", "repository", ref.String(), "error", err)
	default:
		logger.Errorw("Failed to fetch weekly activity", "repository", ref.String(), "error", err)
	}
	return nil
}

func (s *service) ProcessProject(ctx context.Context, projectID int64, repositoryRef string) ([]model.WeeklyStatistic, error) {
	return s.processProject(ctx, projectID, repositoryRef, s.logger)
}

func (s *service) processProject(
	ctx context.Context,
	projectID int64,
	repositoryRef string,
	logger *zap.SugaredLogger,
) ([]model.WeeklyStatistic, error) {
	logger = logger.With("project_id", projectID)

	ref, err := model.ParseRepositoryReference(repositoryRef)
	if err != nil {
		logger.Warnw("Invalid repository reference", "repository", repositoryRef)
		return nil, err
	}

	inserted := []model.WeeklyStatistic{}
	for _, week := range s.fetch(ctx, ref, logger) {
		if week.Additions == 0 && week.Deletions == 0 {
			continue
		}

		stat := &model.WeeklyStatistic{
			ProjectID: projectID,
			WeekDate:  model.NormalizeToWeekStart(week.Week, s.loc),
			Additions: max(week.Additions, 0),
			Deletions: max(week.Deletions, 0),
		}
		ok, err := s.repo.InsertIfAbsent(ctx, stat)
		if err != nil {
			logger.Errorw("Failed to store weekly statistic",
				"week", stat.WeekDate.Format(time.DateOnly),
				"error", err,
			)
			continue
		}
		if !ok {
			logger.Debugw("Weekly statistic already recorded", "week", stat.WeekDate.Format(time.DateOnly))
			continue
		}
		inserted = append(inserted, *stat)
	}

	logger.Infow("Project statistics processed", "repository", ref.String(), "inserted", len(inserted))
	return inserted, nil
}

func (s *service) ProcessProjectByID(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error) {
	project, err := s.repo.GetProjectRepository(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Repository == "" {
		return nil, model.ErrNoRepository
	}
	return s.ProcessProject(ctx, project.ID, project.Repository)
}

func (s *service) ProcessAllProjects(ctx context.Context) (int, error) {
	logger := s.logger.With("run_id", uuid.NewString())
	started := time.Now()

	projects, err := s.repo.ListProjectsWithRepository(ctx)
	if err != nil {
		logger.Errorw("Failed to list projects with repository", "error", err)
		return 0, err
	}
	logger.Infow("Starting statistics collection", "projects", len(projects))

	collected := 0
	for _, p := range projects {
		if ctx.Err() != nil {
			logger.Warnw("Statistics collection stopped", "error", ctx.Err())
			break
		}

		stats, err := s.processProject(ctx, p.ID, p.Repository, logger.With("project", p.Name))
		if err != nil {
			continue
		}
		collected += len(stats)
	}

	logger.Infow("Statistics collection completed",
		"projects", len(projects),
		"collected", collected,
		"duration", time.Since(started),
	)
	return collected, nil
}

func (s *service) GetProjectStatistics(ctx context.Context, projectID int64) ([]model.WeeklyStatistic, error) {
	if _, err := s.repo.GetProjectRepository(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectID)
}
