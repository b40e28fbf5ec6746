package model

import (
	"fmt"
	"slices"
	"strings"
)

// MaxNameLength is the longest accepted person name.
const MaxNameLength = 255

// Normalize validates req and converts it into a Person. id is zero for new people.
func (req PersonRequest) Normalize(id int64) (*Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidPerson, MaxNameLength)
	}

	seniority, err := enumValue("seniority", req.Seniority, Seniorities)
	if err != nil {
		return nil, err
	}
	contract, err := enumValue("contract", req.Contract, Contracts)
	if err != nil {
		return nil, err
	}
	english, err := enumValue("english_level", req.EnglishLevel, EnglishLevels)
	if err != nil {
		return nil, err
	}

	hours := float64(DefaultMonthlyHours)
	if req.MonthlyHours != nil {
		hours = *req.MonthlyHours
	}
	if hours < 0 {
		return nil, fmt.Errorf("%w: monthly_hours must be non-negative", ErrInvalidPerson)
	}

	if err := positiveRef("team_id", req.TeamID); err != nil {
		return nil, err
	}
	if err := positiveRef("role_id", req.RoleID); err != nil {
		return nil, err
	}

	return &Person{
		ID:           id,
		Name:         name,
		Seniority:    seniority,
		Contract:     contract,
		EnglishLevel: english,
		TeamID:       req.TeamID,
		RoleID:       req.RoleID,
		MonthlyHours: hours,
	}, nil
}

// IsSeniority reports whether s is a known seniority level.
func IsSeniority(s string) bool {
	return slices.Contains(Seniorities, s)
}

func enumValue(field string, value *string, allowed []string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}
	if !slices.Contains(allowed, v) {
		return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidPerson, field, strings.Join(allowed, ", "))
	}
	return &v, nil
}

func positiveRef(field string, id *int64) error {
	if id != nil && *id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidPerson, field)
	}
	return nil
}
