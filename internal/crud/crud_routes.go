package crud

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/list/:model", middleware.RBACAuthorize(rbacService, domain.ResourceList, domain.ActionRead), handler.List)
}
