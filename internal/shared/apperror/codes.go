package apperror

import "net/http"

// Error taxonomy. INVALID_STATE covers workflow policy violations such as
// editing a request that is no longer pending.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidState  = "INVALID_STATE"
	CodeInternalError = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	CodeInvalidInput:  http.StatusBadRequest,
	CodeUnauthorized:  http.StatusUnauthorized,
	CodeForbidden:     http.StatusForbidden,
	CodeNotFound:      http.StatusNotFound,
	CodeConflict:      http.StatusConflict,
	CodeInvalidState:  http.StatusBadRequest,
	CodeInternalError: http.StatusInternalServerError,
}

// StatusFor returns the default status of code, 500 for unknown codes.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
