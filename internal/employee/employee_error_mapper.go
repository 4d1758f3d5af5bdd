package employee

import (
	"errors"
	"strings"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolations maps unique constraints on employees to caller errors.
var uniqueViolations = map[string]error{
	"uq_employee_number": employeeerrors.ErrEmployeeNumberAlreadyExists,
	"uq_employee_email":  employeeerrors.ErrEmployeeAlreadyExists,
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if mapped, ok := uniqueViolations[pgErr.ConstraintName]; ok {
			return mapped
		}
	}

	// Drivers that do not surface PgError still name the constraint.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") {
		for constraint, mapped := range uniqueViolations {
			if strings.Contains(msg, constraint) {
				return mapped
			}
		}
	}

	return err
}
