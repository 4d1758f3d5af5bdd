package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	SeedDefaults(ctx context.Context, rows []RolePermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&result).Error
	return result, err
}

func (r *repository) SeedDefaults(ctx context.Context, rows []RolePermission) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
