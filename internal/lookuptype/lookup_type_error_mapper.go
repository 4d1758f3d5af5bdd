package lookuptype

import (
	"errors"

	lookuptypeerrors "go-hrms/internal/lookuptype/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lookuptypeerrors.ErrLookupTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return lookuptypeerrors.ErrLookupTypeCodeConflict
	}

	return err
}
