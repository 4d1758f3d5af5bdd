package profilefileerrors

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
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"File not found",
		http.StatusNotFound,
	)
	ErrFileMissingInStorage = apperror.New(
		apperror.CodeNotFound,
		"File not found on server",
		http.StatusNotFound,
	)
	ErrNoFileUploaded = apperror.New(
		apperror.CodeInvalidInput,
		"No file uploaded",
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
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category is invalid",
		http.StatusBadRequest,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Error uploading file",
		http.StatusInternalServerError,
	)
	ErrSaveFileInfoFailed = apperror.New(
		apperror.CodeInternalError,
		"Error saving file information",
		http.StatusInternalServerError,
	)
	ErrInvalidCallerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid caller id",
		http.StatusBadRequest,
	)
)
