package profilefile

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const viewColumns = `profile_files.*,
	employees.employee_name AS employee_name, employees.employee_number AS employee_number,
	uploader.employee_name AS uploaded_by_name`

//go:generate mockgen -source=profile_file_repo.go -destination=mock/profile_file_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Create(ctx context.Context, f *ProfileFile) error
	FindByID(ctx context.Context, id string) (*ProfileFile, error)
	FindViewByID(ctx context.Context, id string) (*ProfileFileView, error)
	ListByEmployee(ctx context.Context, employeeID string, query ListFilesQuery) ([]ProfileFileView, error)
	ListByCategory(ctx context.Context, category, employeeID string) ([]ProfileFileView, error)
	UpdateInfo(ctx context.Context, f *ProfileFile) (bool, error)
	SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error)
	HardDelete(ctx context.Context, id string) (bool, error)
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

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Table("profile_files").
		Select(viewColumns).
		Joins("LEFT JOIN employees ON employees.id = profile_files.employee_id").
		Joins("LEFT JOIN employees AS uploader ON uploader.id = profile_files.uploaded_by").
		Scopes(scope.Active("profile_files"))
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, f *ProfileFile) error {
	return r.conn(ctx).Create(f).Error
}

// FindByID includes soft-deleted rows.
func (r *repository) FindByID(ctx context.Context, id string) (*ProfileFile, error) {
	var f ProfileFile
	if err := r.conn(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) FindViewByID(ctx context.Context, id string) (*ProfileFileView, error) {
	var v ProfileFileView
	err := r.views(ctx).
		Where("profile_files.id = ?", id).
		Take(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string, query ListFilesQuery) ([]ProfileFileView, error) {
	var views []ProfileFileView
	db := r.views(ctx).Where("profile_files.employee_id = ?", employeeID)
	if query.Category != "" {
		db = db.Where("profile_files.category = ?", query.Category)
	}
	if query.FileType != "" {
		db = db.Where("profile_files.file_type = ?", query.FileType)
	}
	err := db.Order("profile_files.created_at DESC").Scan(&views).Error
	return views, err
}

func (r *repository) ListByCategory(ctx context.Context, category, employeeID string) ([]ProfileFileView, error) {
	var views []ProfileFileView
	db := r.views(ctx).Where("profile_files.category = ?", category)
	if employeeID != "" {
		db = db.Where("profile_files.employee_id = ?", employeeID)
	}
	err := db.Order("profile_files.created_at DESC").Scan(&views).Error
	return views, err
}

func (r *repository) UpdateInfo(ctx context.Context, f *ProfileFile) (bool, error) {
	res := r.conn(ctx).
		Model(&ProfileFile{}).
		Where("id = ? AND is_deleted = ?", f.ID, false).
		Updates(map[string]any{
			"file_type":   f.FileType,
			"category":    f.Category,
			"description": f.Description,
			"updated_by":  f.UpdatedBy,
			"updated_at":  f.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&ProfileFile{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"is_active":  false,
			"deleted_by": deletedBy,
			"deleted_at": at,
			"updated_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) HardDelete(ctx context.Context, id string) (bool, error) {
	res := r.conn(ctx).Where("id = ?", id).Delete(&ProfileFile{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
