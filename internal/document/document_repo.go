package document

import (
	"context"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Create(ctx context.Context, d *Document) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Scopes(scope.Active("")).
		Where("employee_id = ?", employeeID).
		Order("updated_at DESC").
		Find(&docs).Error
	return docs, err
}
