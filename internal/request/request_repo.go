package request

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const viewColumns = `requests.id, requests.employee_id, requests.request_type_code,
	requests.description, requests.from_date, requests.to_date, requests.file_name,
	requests.status, requests.reply, requests.created_by, requests.created_at,
	lookup_types.name AS request_type_name`

const employeeColumns = `, employees.employee_name AS employee_name, employees.email AS employee_email`

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindOwner(ctx context.Context, employeeID string) (*Owner, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]RequestView, error)
	ListAll(ctx context.Context) ([]RequestView, error)
	ListByManager(ctx context.Context, managerID string) ([]RequestView, error)
	UpdateIfStatus(ctx context.Context, r *Request, expectedStatus string) (bool, error)
	SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Create(req).Error
}

// FindByID does not filter soft-deleted rows.
func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.conn(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindOwner(ctx context.Context, employeeID string) (*Owner, error) {
	var owner Owner
	err := r.conn(ctx).
		Table("employees").
		Select("id, manager_id").
		Where("id = ?", employeeID).
		Take(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]RequestView, error) {
	var views []RequestView
	err := r.conn(ctx).
		Table("requests").
		Select(viewColumns).
		Joins("LEFT JOIN lookup_types ON lookup_types.code = requests.request_type_code").
		Scopes(scope.Active("requests")).
		Where("requests.employee_id = ?", employeeID).
		Order("requests.created_at ASC, requests.id ASC").
		Scan(&views).Error
	return views, err
}

func (r *repository) ListAll(ctx context.Context) ([]RequestView, error) {
	var views []RequestView
	err := r.conn(ctx).
		Table("requests").
		Select(viewColumns + employeeColumns).
		Joins("LEFT JOIN employees ON employees.id = requests.employee_id").
		Joins("LEFT JOIN lookup_types ON lookup_types.code = requests.request_type_code").
		Scopes(scope.Active("requests")).
		Order("requests.created_at ASC, requests.id ASC").
		Scan(&views).Error
	return views, err
}

// ListByManager returns requests of the manager's direct reports. Owners
// without a manager never match.
func (r *repository) ListByManager(ctx context.Context, managerID string) ([]RequestView, error) {
	var views []RequestView
	err := r.conn(ctx).
		Table("requests").
		Select(viewColumns + employeeColumns).
		Joins("JOIN employees ON employees.id = requests.employee_id").
		Joins("LEFT JOIN lookup_types ON lookup_types.code = requests.request_type_code").
		Scopes(scope.Active("requests")).
		Where("employees.manager_id IS NOT NULL AND employees.manager_id = ?", managerID).
		Order("requests.created_at ASC, requests.id ASC").
		Scan(&views).Error
	return views, err
}

// UpdateIfStatus writes the mutable columns only when the row still carries
// expectedStatus and is not deleted. It reports whether a row was written.
func (r *repository) UpdateIfStatus(ctx context.Context, req *Request, expectedStatus string) (bool, error) {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status = ? AND is_deleted = ?", req.ID, expectedStatus, false).
		Updates(map[string]any{
			"description": req.Description,
			"from_date":   req.From,
			"to_date":     req.To,
			"file_name":   req.FileName,
			"status":      req.Status,
			"reply":       req.Reply,
			"updated_by":  req.UpdatedBy,
			"updated_at":  req.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": at,
			"deleted_by": deletedBy,
			"updated_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
