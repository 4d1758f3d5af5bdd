package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, q string, page, limit int) ([]Employee, int64, error)
	FindOptions(ctx context.Context) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Scopes(scope.Active("")).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// List matches q against name, email and number, case-insensitively.
func (r *repository) List(ctx context.Context, q string, page, limit int) ([]Employee, int64, error) {
	query := r.conn(ctx).Model(&Employee{}).Scopes(scope.Active(""))
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		query = query.Where("employee_name ILIKE ? OR email ILIKE ? OR employee_number ILIKE ?", like, like, like)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := query.
		Order("employee_name ASC, id ASC").
		Scopes(scope.Paginate(page, limit)).
		Find(&employees).Error
	return employees, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Select("id, employee_name").
		Scopes(scope.Active("")).
		Where("is_active = ?", true).
		Order("employee_name ASC").
		Find(&employees).Error
	return employees, err
}
