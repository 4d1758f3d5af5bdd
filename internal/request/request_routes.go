package request

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	requests := r.Group("/requests")
	requests.Use(auth)
	requests.Use(middleware.ContextLogger(logger))
	{
		create := []gin.HandlerFunc{
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "create"),
		}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb, logger))
		}
		requests.POST("", append(create, handler.Create)...)

		requests.GET("",
			middleware.RBACAuthorize(rbacService, "request", "read"),
			handler.ListMine,
		)
		requests.GET("/for-approver",
			middleware.RBACAuthorize(rbacService, "request", "approve_list"),
			handler.ListForApprover,
		)
		requests.POST("/respond",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "request", "respond"),
			handler.Respond,
		)
		requests.POST("/update",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "update"),
			handler.Update,
		)
		requests.POST("/delete",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "delete"),
			handler.Delete,
		)
		requests.GET("/:id",
			middleware.RBACAuthorize(rbacService, "request", "read"),
			handler.GetByID,
		)
	}
}
