package authkey

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	keys := r.Group("/keys")
	{
		keys.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceKeys, domain.ActionWrite), handler.Issue)
		keys.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceKeys, domain.ActionWrite), handler.Revoke)
	}
}
