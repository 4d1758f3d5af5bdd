package lookuptype

import (
	"go-hrms/internal/identity"
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
	master := r.Group("/master")
	master.Use(auth)
	master.Use(middleware.ContextLogger(logger))
	master.Use(middleware.RoleMiddleware(identity.RoleAdmin, identity.RoleSuperAdmin))
	{
		master.POST("/create-type",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "master", "create"),
			handler.Create,
		)
		master.GET("/get-types",
			middleware.RBACAuthorize(rbacService, "master", "read"),
			handler.List,
		)
		master.POST("/update-type",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "master", "update"),
			handler.Update,
		)
		master.POST("/delete-type",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "master", "delete"),
			handler.Delete,
		)
	}
}
