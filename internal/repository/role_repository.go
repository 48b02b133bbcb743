package repository

import (
	"context"

	"gorm.io/gorm"

	"catalog/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	// EnsureRole returns the role with the given name, creating it if absent.
	// Calling it repeatedly leaves exactly one record per name.
	EnsureRole(ctx context.Context, name string) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) EnsureRole(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where(model.Role{Name: name}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
