package lookuptype

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=lookup_type_repo.go -destination=mock/lookup_type_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LookupType) error
	FindActiveByID(ctx context.Context, id string) (*LookupType, error)
	ListActive(ctx context.Context) ([]LookupType, error)
	UpdateActive(ctx context.Context, lt *LookupType) (bool, error)
	SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error)
	FindNameByCode(ctx context.Context, code int) (*string, error)
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

func (r *repository) Create(ctx context.Context, lt *LookupType) error {
	return r.conn(ctx).Create(lt).Error
}

func (r *repository) FindActiveByID(ctx context.Context, id string) (*LookupType, error) {
	var lt LookupType
	err := r.conn(ctx).
		Scopes(scope.Active("")).
		First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ListActive(ctx context.Context) ([]LookupType, error) {
	var types []LookupType
	err := r.conn(ctx).
		Scopes(scope.Active("")).
		Order("code ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) UpdateActive(ctx context.Context, lt *LookupType) (bool, error) {
	res := r.conn(ctx).
		Model(&LookupType{}).
		Where("id = ? AND is_deleted = ?", lt.ID, false).
		Updates(map[string]any{
			"name":        lt.Name,
			"description": lt.Description,
			"updated_by":  lt.UpdatedBy,
			"updated_at":  lt.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string, deletedBy uuid.UUID, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&LookupType{}).
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

// FindNameByCode matches the request list join: deleted types still resolve.
func (r *repository) FindNameByCode(ctx context.Context, code int) (*string, error) {
	var lt LookupType
	err := r.conn(ctx).
		Select("name").
		Where("code = ?", code).
		Take(&lt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lt.Name, nil
}
