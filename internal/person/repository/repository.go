// Package repository provides data access layer for person module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/dberr"
	personModel "github.com/festy23/palantir/internal/person/model"
)

// Repository defines the interface for person data access operations.
type Repository interface {
	// Create inserts p and fills its id and timestamps.
	Create(ctx context.Context, p *personModel.Person) error

	// Update replaces every editable column of p.
	Update(ctx context.Context, p *personModel.Person) error

	// GetByID returns a person with team and role names.
	GetByID(ctx context.Context, id int64) (*personModel.PersonView, error)

	// List returns people matching filter, ordered by name.
	List(ctx context.Context, filter personModel.ListFilter) ([]personModel.PersonView, error)

	// AssignTeam sets or clears the team of a person.
	AssignTeam(ctx context.Context, id int64, teamID *int64) error

	// Delete removes a person.
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new person repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, p *personModel.Person) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return translate("create person", err)
	}
	r.logger.Debugw("person created", "person_id", p.ID)
	return nil
}

func (r *repository) Update(ctx context.Context, p *personModel.Person) error {
	result := r.db.WithContext(ctx).
		Model(&personModel.Person{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":          p.Name,
			"seniority":     p.Seniority,
			"contract":      p.Contract,
			"english_level": p.EnglishLevel,
			"team_id":       p.TeamID,
			"role_id":       p.RoleID,
			"monthly_hours": p.MonthlyHours,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return translate("update person", result.Error)
	}
	if result.RowsAffected == 0 {
		return personModel.ErrPersonNotFound
	}
	return nil
}

func (r *repository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("people p").
		Select("p.*, t.name AS team_name, ro.name AS role_name").
		Joins("LEFT JOIN teams t ON t.id = p.team_id").
		Joins("LEFT JOIN roles ro ON ro.id = p.role_id")
}

func (r *repository) GetByID(ctx context.Context, id int64) (*personModel.PersonView, error) {
	var people []personModel.PersonView
	if err := r.query(ctx).Where("p.id = ?", id).Limit(1).Scan(&people).Error; err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	if len(people) == 0 {
		return nil, personModel.ErrPersonNotFound
	}
	return &people[0], nil
}

func (r *repository) List(ctx context.Context, filter personModel.ListFilter) ([]personModel.PersonView, error) {
	q := r.query(ctx)
	switch {
	case filter.Unassigned:
		q = q.Where("p.team_id IS NULL")
	case filter.TeamID != nil:
		q = q.Where("p.team_id = ?", *filter.TeamID)
	}
	if filter.RoleID != nil {
		q = q.Where("p.role_id = ?", *filter.RoleID)
	}
	if filter.Seniority != "" {
		q = q.Where("p.seniority = ?", filter.Seniority)
	}

	var people []personModel.PersonView
	if err := q.Order("p.name ASC, p.id ASC").Scan(&people).Error; err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	if people == nil {
		return []personModel.PersonView{}, nil
	}
	return people, nil
}

func (r *repository) AssignTeam(ctx context.Context, id int64, teamID *int64) error {
	result := r.db.WithContext(ctx).
		Model(&personModel.Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"team_id": teamID, "updated_at": time.Now()})
	if result.Error != nil {
		return translate("assign team", result.Error)
	}
	if result.RowsAffected == 0 {
		return personModel.ErrPersonNotFound
	}
	r.logger.Debugw("person team assigned", "person_id", id, "team_id", teamID)
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&personModel.Person{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return personModel.ErrPersonNotFound
	}
	return nil
}

func translate(op string, err error) error {
	switch {
	case dberr.IsForeignKeyViolation(err):
		return personModel.ErrInvalidReference
	case dberr.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", personModel.ErrInvalidPerson, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return personModel.ErrPersonNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
