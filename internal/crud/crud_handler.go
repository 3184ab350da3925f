package crud

import (
	"net/http"

	"sara-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	h.list(c, c.Param("model"))
}

// ListModel serves a fixed model, for routes like GET /staff.
func (h *Handler) ListModel(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.list(c, model)
	}
}

func (h *Handler) list(c *gin.Context, model string) {
	data, total, err := h.service.List(c.Request.Context(), model, c.Query("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, data, total)
}
