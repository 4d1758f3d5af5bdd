package apperror

import (
	"errors"
	"fmt"
)

// AppError is an error that is safe to show to API callers. Err carries the
// underlying cause for logs and never reaches the response.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a sentinel. A zero httpStatus takes the default for code.
func New(code, message string, httpStatus int) *AppError {
	if httpStatus == 0 {
		httpStatus = StatusFor(code)
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	app := New(code, message, httpStatus)
	app.Err = err
	return app
}

// CodeOf reports the taxonomy code of err. Plain errors are internal.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}
