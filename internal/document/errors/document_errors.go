package documenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields: file, fileName, employeeId",
		http.StatusBadRequest,
	)
	ErrInvalidFileContent = apperror.New(
		apperror.CodeInvalidInput,
		"file must be base64 encoded",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File exceeds the upload size limit",
		http.StatusBadRequest,
	)
	ErrInvalidFileType = apperror.New(
		apperror.CodeInvalidInput,
		"fileType is invalid",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Error uploading file",
		http.StatusInternalServerError,
	)
	ErrInvalidCallerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid caller id",
		http.StatusBadRequest,
	)
)
