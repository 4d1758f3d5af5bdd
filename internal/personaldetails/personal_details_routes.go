package personaldetails

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	details := r.Group("/personal-details")
	details.Use(auth)
	details.Use(middleware.ContextLogger(logger))
	{
		details.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "personal_details", "read"),
			handler.List,
		)
		details.GET("/search",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "personal_details", "read"),
			handler.Search,
		)
		details.POST("/:employeeId",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "personal_details", "create"),
			handler.Create,
		)
		details.GET("/:employeeId",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "personal_details", "read"),
			handler.Get,
		)
		details.PUT("/:employeeId",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "personal_details", "update"),
			handler.Update,
		)
	}
}
