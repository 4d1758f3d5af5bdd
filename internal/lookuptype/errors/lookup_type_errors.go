package lookuptypeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrLookupTypeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Type id is required",
		http.StatusBadRequest,
	)
	ErrLookupTypeNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrLookupTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Type not found or already deleted",
		http.StatusNotFound,
	)
	ErrLookupTypeCodeConflict = apperror.New(
		apperror.CodeConflict,
		"Type code already taken, please retry",
		http.StatusConflict,
	)
	ErrInvalidCallerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid caller id",
		http.StatusBadRequest,
	)
)
