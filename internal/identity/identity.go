package identity

import (
	"net/http"

	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Gin context keys written by the auth middleware.
const (
	KeyEmployeeID = "employee_id"
	KeyRole       = "role"
)

var ErrUnauthenticated = apperror.New(
	apperror.CodeUnauthorized,
	"Authentication required",
	http.StatusUnauthorized,
)

// Caller is the authenticated actor of one operation.
type Caller struct {
	ID   string
	Role Role
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdminTier reports admin or super_admin.
func (r Role) IsAdminTier() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func FromGin(c *gin.Context) (Caller, error) {
	id := c.GetString(KeyEmployeeID)
	if id == "" {
		return Caller{}, ErrUnauthenticated
	}
	return Caller{ID: id, Role: Role(c.GetString(KeyRole))}, nil
}
