// Package repository provides data access layer for role module.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/dberr"
	roleModel "github.com/festy23/palantir/internal/role/model"
)

// Repository defines role data access operations.
type Repository interface {
	Create(ctx context.Context, name string) (*roleModel.Role, error)
	List(ctx context.Context) ([]roleModel.RoleSummary, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new role repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, name string) (*roleModel.Role, error) {
	role := &roleModel.Role{Name: name}
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, roleModel.ErrRoleExists
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	r.logger.Debugw("role created", "role_id", role.ID, "name", name)
	return role, nil
}

func (r *repository) List(ctx context.Context) ([]roleModel.RoleSummary, error) {
	var roles []roleModel.RoleSummary
	err := r.db.WithContext(ctx).
		Table("roles r").
		Select("r.id, r.name, COUNT(p.id) AS people_count").
		Joins("LEFT JOIN people p ON p.role_id = r.id").
		Group("r.id, r.name").
		Order("r.name ASC").
		Scan(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	if roles == nil {
		return []roleModel.RoleSummary{}, nil
	}
	return roles, nil
}

// Delete refuses while people hold the role; the schema would otherwise null
// their role silently.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holders int64
		if err := tx.Table("people").Where("role_id = ?", id).Count(&holders).Error; err != nil {
			return fmt.Errorf("count role holders: %w", err)
		}
		if holders > 0 {
			return roleModel.ErrRoleInUse
		}

		result := tx.Delete(&roleModel.Role{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete role: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return roleModel.ErrRoleNotFound
		}
		return nil
	})
}
