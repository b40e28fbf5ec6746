// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	teamModel "github.com/festy23/palantir/internal/team/model"
	"github.com/festy23/palantir/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team with a trimmed, non-empty, unique name.
	CreateTeam(ctx context.Context, name string) (*teamModel.Team, error)

	// ListTeams returns every team with usage counters.
	ListTeams(ctx context.Context) ([]teamModel.TeamSummary, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, id int64) (*teamModel.TeamDetails, error)

	// RenameTeam changes a team name.
	RenameTeam(ctx context.Context, id int64, name string) (*teamModel.Team, error)

	// DeleteTeam removes a team nobody references.
	DeleteTeam(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > teamModel.MaxNameLength {
		return "", teamModel.ErrInvalidTeamName
	}
	return name, nil
}

func (s *service) CreateTeam(ctx context.Context, name string) (*teamModel.Team, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	team, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamSummary, error) {
	return s.repo.List(ctx)
}

func (s *service) GetTeam(ctx context.Context, id int64) (*teamModel.TeamDetails, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, id)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamDetails{Team: *team, Members: members}, nil
}

func (s *service) RenameTeam(ctx context.Context, id int64, name string) (*teamModel.Team, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return s.repo.Rename(ctx, id, name)
}

func (s *service) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Team deleted", "team_id", id)
	return nil
}
