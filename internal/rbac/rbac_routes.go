package rbac

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", middleware.RBACAuthorize(service, domain.ResourceRBAC, domain.ActionRead), handler.Enforce)
		group.GET("/policies", middleware.RBACAuthorize(service, domain.ResourceRBAC, domain.ActionRead), handler.ListPolicies)
		group.POST("/policies", middleware.RBACAuthorize(service, domain.ResourceRBAC, domain.ActionWrite), handler.Grant)
		group.POST("/reload", middleware.RBACAuthorize(service, domain.ResourceRBAC, domain.ActionWrite), handler.Reload)
	}
}
