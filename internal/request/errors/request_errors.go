package requesterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRequestIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Request id is required",
		http.StatusBadRequest,
	)
	ErrInvalidCallerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid caller id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of pending, approved, rejected",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNotAuthorizedToRespond = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to act on this request",
		http.StatusForbidden,
	)
	ErrNotAuthorizedToUpdate = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to update this request",
		http.StatusForbidden,
	)
	ErrNotAuthorizedToDelete = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to delete this request",
		http.StatusForbidden,
	)
	ErrNotAuthorizedToView = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to view this request",
		http.StatusForbidden,
	)
	ErrOnlyPendingUpdatable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending requests can be updated",
		http.StatusBadRequest,
	)
	ErrRequestModified = apperror.New(
		apperror.CodeConflict,
		"Request was modified concurrently, please retry",
		http.StatusConflict,
	)
)
