package personaldetails

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
)

const viewColumns = `personal_details.*,
	employees.employee_name AS employee_name, employees.employee_number AS employee_number,
	employees.email AS employee_email, employees.phone AS employee_phone,
	employees.position AS position, employees.department AS department`

// SearchFilter narrows List. An empty Column means no filter.
type SearchFilter struct {
	Column string
	Term   string
}

//go:generate mockgen -source=personal_details_repo.go -destination=mock/personal_details_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Create(ctx context.Context, pd *PersonalDetails) error
	FindByEmployee(ctx context.Context, employeeID string) (*PersonalDetails, error)
	FindViewByEmployee(ctx context.Context, employeeID string) (*PersonalDetailsView, error)
	Update(ctx context.Context, pd *PersonalDetails) (bool, error)
	List(ctx context.Context, filter SearchFilter, page, limit int) ([]PersonalDetailsView, int64, error)
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

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, pd *PersonalDetails) error {
	return r.conn(ctx).Create(pd).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*PersonalDetails, error) {
	var pd PersonalDetails
	err := r.conn(ctx).
		Scopes(scope.Active("")).
		First(&pd, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (r *repository) FindViewByEmployee(ctx context.Context, employeeID string) (*PersonalDetailsView, error) {
	var view PersonalDetailsView
	err := r.conn(ctx).
		Table("personal_details").
		Select(viewColumns).
		Joins("LEFT JOIN employees ON employees.id = personal_details.employee_id").
		Scopes(scope.Active("personal_details")).
		Where("personal_details.employee_id = ?", employeeID).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *repository) Update(ctx context.Context, pd *PersonalDetails) (bool, error) {
	res := r.conn(ctx).
		Model(&PersonalDetails{}).
		Where("id = ? AND is_deleted = ?", pd.ID, false).
		Updates(map[string]any{
			"date_of_birth":              pd.DateOfBirth,
			"gender":                     pd.Gender,
			"nationality":                pd.Nationality,
			"marital_status":             pd.MaritalStatus,
			"blood_group":                pd.BloodGroup,
			"personal_email":             pd.PersonalEmail,
			"address_line1":              pd.AddressLine1,
			"address_line2":              pd.AddressLine2,
			"city":                       pd.City,
			"state":                      pd.State,
			"country":                    pd.Country,
			"postal_code":                pd.PostalCode,
			"emergency_contact_name":     pd.EmergencyContactName,
			"emergency_contact_relation": pd.EmergencyContactRelation,
			"emergency_contact_phone":    pd.EmergencyContactPhone,
			"updated_by":                 pd.UpdatedBy,
			"updated_at":                 pd.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) List(ctx context.Context, filter SearchFilter, page, limit int) ([]PersonalDetailsView, int64, error) {
	var (
		views []PersonalDetailsView
		total int64
	)

	query := r.conn(ctx).
		Table("personal_details").
		Joins("LEFT JOIN employees ON employees.id = personal_details.employee_id").
		Scopes(scope.Active("personal_details"))

	if filter.Column != "" && filter.Term != "" {
		query = query.Where(filter.Column+" ILIKE ?", "%"+filter.Term+"%")
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Session(&gorm.Session{}).
		Select(viewColumns).
		Order("personal_details.created_at DESC").
		Scopes(scope.Paginate(page, limit)).
		Scan(&views).Error
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}
