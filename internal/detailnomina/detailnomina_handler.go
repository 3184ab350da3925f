package detailnomina

import (
	"net/http"
	"strconv"

	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/response"
	"sara-api/internal/shared/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("detailnomina.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("detailnomina.handler")
	}
	return &Handler{service: service, logger: l}
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, apperror.MapValidationError(err, nil))
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	var req DetailRequest
	if !bindBody(c, &req) {
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) CreateBulk(c *gin.Context) {
	var flat map[string]validation.NumericString
	if !bindBody(c, &flat) {
		return
	}

	res, err := h.service.CreateBulk(c.Request.Context(), flat)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) ListByNomina(c *gin.Context) {
	idNomina, err := strconv.ParseUint(c.Param("idNomina"), 10, 64)
	if err != nil || idNomina == 0 {
		response.Error(c, detailnominaerrors.ErrInvalidNominaID)
		return
	}

	rows, err := h.service.ListByNomina(c.Request.Context(), uint(idNomina))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, rows, int64(len(rows)))
}

// Update takes the composite key from the path; it overrides any ids in
// the body.
func (h *Handler) Update(c *gin.Context) {
	var req DetailRequest
	if !bindBody(c, &req) {
		return
	}
	req.IDNomina = validation.NumericString(c.Param("idNomina"))
	req.IDStaff = validation.NumericString(c.Param("idStaff"))

	d, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Delete(c *gin.Context) {
	idNomina, err := strconv.ParseUint(c.Param("idNomina"), 10, 64)
	if err != nil {
		response.Error(c, detailnominaerrors.ErrIDNominaNotNumeric)
		return
	}
	idStaff, err := strconv.ParseUint(c.Param("idStaff"), 10, 64)
	if err != nil {
		response.Error(c, detailnominaerrors.ErrIDStaffNotNumeric)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(idNomina), uint(idStaff)); err != nil {
		response.Error(c, err)
		return
	}
	h.logger.Debug("detail nomina deleted", zap.Uint64("id_nomina", idNomina), zap.Uint64("id_staff", idStaff))
	response.Message(c, http.StatusOK, "Detalle de nomina eliminado")
}
