package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hrms/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("respond: %w", apperror.ErrNotFound)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestRequiredField(t *testing.T) {
	err := apperror.RequiredField("Employee Name")

	assert.Equal(t, "Employee Name is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(fmt.Errorf("update: %w", apperror.ErrConflict)))
	assert.Equal(t, apperror.CodeInternalError, apperror.CodeOf(errors.New("boom")))
}

func TestNew_DefaultStatusFromCode(t *testing.T) {
	err := apperror.New(apperror.CodeInvalidState, "Request is no longer pending", 0)

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusFor("SOMETHING_ELSE"))
}

func TestWrap_KeepsCauseOutOfResponse(t *testing.T) {
	cause := errors.New("minio: connection reset")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "Error uploading file", 0)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error uploading file", apperror.ToHTTP(err).Message)
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 0))
}
