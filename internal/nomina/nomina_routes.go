package nomina

import (
	"sara-api/internal/domain"
	"sara-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /nomina, the /doc alias and /graphs/nomina.
// idempotent guards run creation. The bank document exposes decrypted
// accounts, so it needs write access.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idempotent gin.HandlerFunc) {
	read := middleware.RBACAuthorize(rbacService, domain.ResourceNomina, domain.ActionRead)
	write := middleware.RBACAuthorize(rbacService, domain.ResourceNomina, domain.ActionWrite)

	nomina := r.Group("/nomina")
	{
		nomina.GET("/quincenal", read, handler.ListQuincenal)
		nomina.GET("/mensual", read, handler.ListMensual)
		nomina.GET("/staff/:idStaff", read, handler.GetByStaff)
		nomina.GET("/:id", read, handler.GetByID)
		nomina.GET("/:id/payslip/:idStaff", read, handler.GetPayslip)
		nomina.POST("", write, idempotent, handler.Create)
		nomina.POST("/doc", write, handler.BankDocument)
		nomina.POST("/:id/payslips", write, handler.RequestPayslips)
		nomina.PUT("/:id", write, handler.Update)
		nomina.DELETE("/:id", write, handler.Delete)
	}

	r.POST("/doc", write, handler.BankDocument)

	r.GET("/graphs/nomina",
		middleware.RBACAuthorize(rbacService, domain.ResourceGraphs, domain.ActionRead),
		handler.RecentTotals,
	)
}
