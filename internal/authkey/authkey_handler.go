package authkey

import (
	"net/http"
	"strconv"

	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("authkey.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Issue(c *gin.Context) {
	var req IssueKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err, nil))
		return
	}

	resp, err := h.service.Issue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.logger.Info("auth key issued", zap.String("owner", resp.Owner), zap.String("role", resp.Role))
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Revoke(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Invalid("[AuthKey] Se recibio un id invalido"))
		return
	}

	if err := h.service.Revoke(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Llave revocada")
}
