package detailnomina

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /detailNomina. idempotent guards the bulk insert.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idempotent gin.HandlerFunc) {
	read := middleware.RBACAuthorize(rbacService, domain.ResourceDetailNomina, domain.ActionRead)
	write := middleware.RBACAuthorize(rbacService, domain.ResourceDetailNomina, domain.ActionWrite)

	details := r.Group("/detailNomina")
	{
		details.GET("/:idNomina", read, handler.ListByNomina)
		details.POST("", write, handler.Create)
		details.POST("/bulk", write, idempotent, handler.CreateBulk)
		details.PUT("/:idNomina/:idStaff", write, handler.Update)
		details.DELETE("/:idNomina/:idStaff", write, handler.Delete)
	}
}
