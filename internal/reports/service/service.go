// Package service aggregates people into role, seniority and team distributions.
package service

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	reportModel "github.com/festy23/palantir/internal/reports/model"
	"github.com/festy23/palantir/internal/reports/repository"
)

// Service defines report operations.
type Service interface {
	GetTeamStats(ctx context.Context, filter reportModel.Filter) (*reportModel.TeamStats, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new report service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetTeamStats(ctx context.Context, filter reportModel.Filter) (*reportModel.TeamStats, error) {
	people, err := s.repo.People(ctx)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(people, filter)
	return &stats, nil
}

// Aggregate filters people and partitions them. Percentages are rounded
// count/total*100; lists are ordered by count descending, then label.
func Aggregate(people []reportModel.PersonRow, filter reportModel.Filter) reportModel.TeamStats {
	var matched []reportModel.PersonRow
	for _, p := range people {
		if filter.Team != "" && teamLabel(p) != filter.Team {
			continue
		}
		if filter.Role != "" && roleLabel(p) != filter.Role {
			continue
		}
		if filter.Seniority != "" && seniorityLabel(p) != filter.Seniority {
			continue
		}
		matched = append(matched, p)
	}

	return reportModel.TeamStats{
		Total:       len(matched),
		ByRole:      partition(matched, roleLabel),
		BySeniority: partition(matched, seniorityLabel),
		ByTeam:      partition(matched, teamLabel),
	}
}

func partition(people []reportModel.PersonRow, label func(reportModel.PersonRow) string) []reportModel.Partition {
	counts := make(map[string]int)
	for _, p := range people {
		counts[label(p)]++
	}

	out := make([]reportModel.Partition, 0, len(counts))
	for l, n := range counts {
		out = append(out, reportModel.Partition{
			Label:      l,
			Count:      n,
			Percentage: int(math.Round(float64(n) / float64(len(people)) * 100)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func labelOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func roleLabel(p reportModel.PersonRow) string      { return labelOr(p.RoleName, reportModel.NoRole) }
func seniorityLabel(p reportModel.PersonRow) string { return labelOr(p.Seniority, reportModel.NoSeniority) }
func teamLabel(p reportModel.PersonRow) string      { return labelOr(p.TeamName, reportModel.NoTeam) }
