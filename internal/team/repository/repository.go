// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/dberr"
	teamModel "github.com/festy23/palantir/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a team.
	Create(ctx context.Context, name string) (*teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id int64) (*teamModel.Team, error)

	// List returns all teams with member and project counters, ordered by name.
	List(ctx context.Context) ([]teamModel.TeamSummary, error)

	// Members returns the people assigned to a team, ordered by name.
	Members(ctx context.Context, id int64) ([]teamModel.TeamMember, error)

	// Rename changes the team name.
	Rename(ctx context.Context, id int64, name string) (*teamModel.Team, error)

	// Delete removes a team unless people or projects reference it.
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, name string) (*teamModel.Team, error) {
	team := &teamModel.Team{Name: name}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, teamModel.ErrTeamExists
		}
		return nil, fmt.Errorf("create team: %w", err)
	}

	r.logger.Debugw("team created", "team_id", team.ID, "name", name)
	return team, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &team, nil
}

func (r *repository) List(ctx context.Context) ([]teamModel.TeamSummary, error) {
	var teams []teamModel.TeamSummary

	err := r.db.WithContext(ctx).
		Table("teams t").
		Select(`t.id, t.name,
			(SELECT COUNT(*) FROM people p WHERE p.team_id = t.id) AS member_count,
			(SELECT COUNT(*) FROM projects pr WHERE pr.team_id = t.id) AS project_count,
			(SELECT COALESCE(SUM(p.monthly_hours), 0) FROM people p WHERE p.team_id = t.id) AS total_hours`).
		Order("t.name ASC").
		Scan(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	if teams == nil {
		return []teamModel.TeamSummary{}, nil
	}
	return teams, nil
}

func (r *repository) Members(ctx context.Context, id int64) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember

	err := r.db.WithContext(ctx).
		Table("people p").
		Select("p.id, p.name, p.seniority, r.name AS role_name, p.monthly_hours").
		Joins("LEFT JOIN roles r ON r.id = p.role_id").
		Where("p.team_id = ?", id).
		Order("p.name ASC, p.id ASC").
		Scan(&members).Error
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	if members == nil {
		return []teamModel.TeamMember{}, nil
	}
	return members, nil
}

func (r *repository) Rename(ctx context.Context, id int64, name string) (*teamModel.Team, error) {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": time.Now()})
	if result.Error != nil {
		if dberr.IsUniqueViolation(result.Error) {
			return nil, teamModel.ErrTeamExists
		}
		return nil, fmt.Errorf("rename team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, teamModel.ErrTeamNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		err := tx.Raw(`SELECT
				(SELECT COUNT(*) FROM people WHERE team_id = ?) +
				(SELECT COUNT(*) FROM projects WHERE team_id = ?)`, id, id).
			Scan(&dependents).Error
		if err != nil {
			return fmt.Errorf("count team dependents: %w", err)
		}
		if dependents > 0 {
			return teamModel.ErrTeamInUse
		}

		result := tx.Delete(&teamModel.Team{}, id)
		if result.Error != nil {
			if dberr.IsForeignKeyViolation(result.Error) {
				return teamModel.ErrTeamInUse
			}
			return fmt.Errorf("delete team: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return teamModel.ErrTeamNotFound
		}

		r.logger.Debugw("team deleted", "team_id", id)
		return nil
	})
}
