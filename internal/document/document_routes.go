package document

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
	documents := r.Group("/documents")
	documents.Use(auth)
	documents.Use(middleware.ContextLogger(logger))
	{
		documents.POST("/upload/:employeeId",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "document", "create"),
			handler.Upload,
		)
		documents.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.ListByEmployee,
		)
	}
}
