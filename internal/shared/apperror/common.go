package apperror

var (
	ErrNotFound  = New(CodeNotFound, "Resource not found", 0)
	ErrForbidden = New(CodeForbidden, "You do not have permission to access this resource", 0)
	ErrConflict  = New(CodeConflict, "Resource was modified concurrently, please retry", 0)

	// ErrInternal is what every unclassified failure looks like to a caller.
	ErrInternal = New(CodeInternalError, "Internal server error", 0)
)
