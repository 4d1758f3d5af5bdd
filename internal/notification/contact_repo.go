package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Contact struct {
	ID           string
	EmployeeName string
	Email        string
	ManagerID    *string
}

//go:generate mockgen -source=contact_repo.go -destination=mock/contact_repo_mock.go -package=mock
type ContactRepository interface {
	// FindByID returns nil when the employee does not exist.
	FindByID(ctx context.Context, employeeID string) (*Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByID(ctx context.Context, employeeID string) (*Contact, error) {
	var c Contact
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, employee_name, email, manager_id").
		Where("id = ?", employeeID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
