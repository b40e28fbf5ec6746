// Package service computes team capacity against projected project hours.
package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	capacityModel "github.com/festy23/palantir/internal/capacity/model"
	"github.com/festy23/palantir/internal/capacity/repository"
	projectModel "github.com/festy23/palantir/internal/project/model"
	phModel "github.com/festy23/palantir/internal/projectedhours/model"
)

// Service defines capacity operations.
type Service interface {
	// ComputeCapacity returns one snapshot per team for the month.
	ComputeCapacity(ctx context.Context, year, month int) ([]capacityModel.TeamCapacity, error)

	// ComputeSummary returns snapshots for months consecutive months starting
	// at (year, month).
	ComputeSummary(ctx context.Context, year, month, months int) ([]capacityModel.MonthCapacity, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new capacity service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ComputeCapacity(ctx context.Context, year, month int) ([]capacityModel.TeamCapacity, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.repo.Projects(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return BuildSnapshots(teams, projects), nil
}

func (s *service) ComputeSummary(ctx context.Context, year, month, months int) ([]capacityModel.MonthCapacity, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if months < 1 || months > capacityModel.MaxSummaryMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", capacityModel.ErrInvalidPeriod, capacityModel.MaxSummaryMonths)
	}

	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return nil, err
	}

	summary := make([]capacityModel.MonthCapacity, 0, months)
	y, m := year, month
	for range months {
		projects, err := s.repo.Projects(ctx, y, m)
		if err != nil {
			return nil, err
		}
		summary = append(summary, capacityModel.MonthCapacity{
			Year:  y,
			Month: m,
			Teams: BuildSnapshots(teams, projects),
		})
		y, m = nextMonth(y, m)
	}

	s.logger.Debugw("Capacity summary computed", "year", year, "month", month, "months", months)
	return summary, nil
}

// BuildSnapshots computes a snapshot per team, in the order teams are given.
// Only Active and On Hold projects consume capacity.
func BuildSnapshots(teams []capacityModel.TeamRow, projects []capacityModel.ProjectRow) []capacityModel.TeamCapacity {
	byTeam := make(map[int64][]capacityModel.ProjectRow)
	for _, p := range projects {
		if p.Status != projectModel.StatusActive && p.Status != projectModel.StatusOnHold {
			continue
		}
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	snapshots := make([]capacityModel.TeamCapacity, 0, len(teams))
	for _, t := range teams {
		snap := capacityModel.TeamCapacity{
			TeamID:           t.ID,
			TeamName:         t.Name,
			MemberCount:      t.MemberCount,
			TotalMemberHours: t.TotalMemberHours,
			Projects:         []capacityModel.ProjectCapacity{},
		}
		for _, p := range byTeam[t.ID] {
			snap.TotalProjectedHours += p.ProjectedHours
			snap.Projects = append(snap.Projects, capacityModel.ProjectCapacity{
				ID:             p.ID,
				Name:           p.Name,
				ClientName:     p.ClientName,
				Status:         p.Status,
				ProjectedHours: p.ProjectedHours,
			})
		}

		snap.CapacityDifference = round2(snap.TotalMemberHours - snap.TotalProjectedHours)
		if snap.TotalMemberHours > 0 {
			snap.UtilizationPercentage = int(math.Round(snap.TotalProjectedHours / snap.TotalMemberHours * 100))
		}
		snap.Status = Classify(snap.CapacityDifference, snap.TotalMemberHours)

		snapshots = append(snapshots, snap)
	}
	return snapshots
}

// Classify labels a capacity difference relative to member hours.
func Classify(difference, memberHours float64) string {
	var pct float64
	if memberHours > 0 {
		pct = difference / memberHours * 100
	}

	switch {
	case pct > 20:
		return capacityModel.StatusExcessHigh
	case pct > 0:
		return capacityModel.StatusExcessLow
	case pct >= -20:
		return capacityModel.StatusOptimal
	case pct >= -40:
		return capacityModel.StatusShortageModerate
	default:
		return capacityModel.StatusShortageHigh
	}
}

func validatePeriod(year, month int) error {
	if year < phModel.MinYear || year > phModel.MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d", capacityModel.ErrInvalidPeriod, phModel.MinYear, phModel.MaxYear)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", capacityModel.ErrInvalidPeriod)
	}
	return nil
}

func nextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
