package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-hrms/internal/identity"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware verifies an HMAC-signed token from the Authorization header or
// the access_token cookie and attaches the caller's id and role.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		employeeID, _ := claims["id"].(string)
		if employeeID == "" {
			employeeID, _ = claims["employee_id"].(string)
		}
		if employeeID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Employee ID not found in token", nil)
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)

		c.Set(identity.KeyEmployeeID, employeeID)
		c.Set(identity.KeyRole, role)
		c.Set("user_id", employeeID)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := identity.Role(c.GetString(identity.KeyRole))

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abortWith(c, apperror.ErrForbidden)
	}
}
