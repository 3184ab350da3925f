package staff

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /staff. list serves the paginated index and is
// normally the generic list handler bound to the staff model.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, list gin.HandlerFunc, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionRead)
	write := middleware.RBACAuthorize(rbacService, domain.ResourceStaff, domain.ActionWrite)

	staff := r.Group("/staff")
	{
		staff.GET("", read, list)
		staff.GET("/:id", read, handler.GetByID)
		staff.POST("", write, handler.Create)
		staff.PUT("/:id", write, handler.Update)
		staff.DELETE("/:id", write, handler.Delete)
	}
}
