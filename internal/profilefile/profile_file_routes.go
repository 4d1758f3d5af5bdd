package profilefile

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
	profile := r.Group("/profile")
	profile.Use(auth)
	profile.Use(middleware.ContextLogger(logger))
	{
		profile.POST("/upload/:employeeId",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "profile", "create"),
			handler.Upload,
		)
		profile.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			handler.ListByEmployee,
		)
		profile.GET("/file/:fileId",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			handler.GetByID,
		)
		profile.GET("/download/:fileId",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			handler.Download,
		)
		profile.PUT("/file/:fileId",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "profile", "update"),
			handler.UpdateInfo,
		)
		profile.DELETE("/file/:fileId",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "profile", "delete"),
			handler.Delete,
		)
		profile.DELETE("/file/:fileId/hard",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "profile", "purge"),
			handler.HardDelete,
		)
		profile.GET("/category/:category",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			handler.ListByCategory,
		)
	}
}
