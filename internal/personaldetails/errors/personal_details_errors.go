package personaldetailserrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPersonalDetailsNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personal details not found",
		http.StatusNotFound,
	)
	ErrPersonalDetailsAlreadyExist = apperror.New(
		apperror.CodeInvalidInput,
		"Personal details already exist for this employee",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"dateOfBirth must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidSearchField = apperror.New(
		apperror.CodeInvalidInput,
		"field must be one of employeeName, nationality, maritalStatus",
		http.StatusBadRequest,
	)
	ErrInvalidCallerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid caller id",
		http.StatusBadRequest,
	)
)
