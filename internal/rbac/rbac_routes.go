package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth)
	{
		group.POST("/enforce", middleware.RBACAuthorize(service, "rbac", "read"), handler.Enforce)
		group.GET("/policies", middleware.RBACAuthorize(service, "rbac", "read"), handler.ListPolicies)
	}
}
