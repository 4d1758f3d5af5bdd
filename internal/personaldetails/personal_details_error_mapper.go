package personaldetails

import (
	"errors"

	personaldetailserrors "go-hrms/internal/personaldetails/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personaldetailserrors.ErrPersonalDetailsNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_personal_details_employee" {
		return personaldetailserrors.ErrPersonalDetailsAlreadyExist
	}

	return err
}
