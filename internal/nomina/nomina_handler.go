package nomina

import (
	"net/http"
	"strconv"
	"strings"

	nominaerrors "sara-api/internal/nomina/errors"
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
	l := zap.L().Named("nomina.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("nomina.handler")
	}
	return &Handler{service: service, logger: l}
}

func pathID(c *gin.Context, name string, invalid *apperror.AppError) (uint, bool) {
	raw := c.Param(name)
	if !validation.IsNumeric(raw) {
		response.Error(c, invalid)
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		response.Error(c, invalid)
		return 0, false
	}
	return uint(id), true
}

// pageParam turns page text into a page number; anything unusable is 1.
func pageParam(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("page"))
	if !validation.IsNumeric(raw) {
		return 1
	}
	page, err := strconv.Atoi(strings.SplitN(raw, ".", 2)[0])
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

// yearParam reads the required year query value.
func yearParam(c *gin.Context) (string, bool) {
	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		response.Error(c, nominaerrors.ErrMissingFields)
		return "", false
	}
	if !validation.IsYearOrMonth(year) {
		response.Error(c, nominaerrors.ErrInvalidPeriod)
		return "", false
	}
	return year, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNominaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("http create nomina validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err, fieldMessages))
		return
	}

	n, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, n)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", nominaerrors.ErrInvalidID)
	if !ok {
		return
	}
	var req UpdateNominaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err, fieldMessages))
		return
	}

	n, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, n)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", nominaerrors.ErrInvalidID)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Nomina eliminada")
}

// GetByID returns the run with its line items when detail=true, otherwise
// the run with its totals.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id", nominaerrors.ErrInvalidID)
	if !ok {
		return
	}

	detail := false
	if d := c.Query("detail"); validation.IsBoolean(d) {
		detail, _ = validation.ToBool(d)
	}

	ctx := c.Request.Context()
	if detail {
		n, err := h.service.GetWithDetails(ctx, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, n)
		return
	}

	summary, err := h.service.GetSummary(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) GetByStaff(c *gin.Context) {
	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		response.Error(c, nominaerrors.ErrMissingFields)
		return
	}
	idStaff, ok := pathID(c, "idStaff", nominaerrors.ErrInvalidStaffID)
	if !ok {
		return
	}
	if !validation.IsYearOrMonth(year) {
		response.Error(c, nominaerrors.ErrInvalidPeriod)
		return
	}
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !validation.IsYearOrMonth(month) {
		response.Error(c, nominaerrors.ErrInvalidPeriod)
		return
	}

	res, err := h.service.GetByStaff(c.Request.Context(), idStaff, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, res, int64(len(res.Nominas)))
}

// ListQuincenal pages through a year's fortnightly runs; all=true returns
// the whole year.
func (h *Handler) ListQuincenal(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	var (
		items []Summary
		err   error
	)
	if all, _ := validation.ToBool(c.Query("all")); all {
		items, err = h.service.ListAllQuincenal(c.Request.Context(), year)
	} else {
		items, err = h.service.ListQuincenal(c.Request.Context(), year, pageParam(c))
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, items, int64(len(items)))
}

func (h *Handler) ListMensual(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	items, err := h.service.ListMensual(c.Request.Context(), year, pageParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, items, int64(len(items)))
}

func (h *Handler) BankDocument(c *gin.Context) {
	var req BankDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err, nil))
		return
	}
	if !req.NominaID.Present() || strings.TrimSpace(req.AccountType) == "" ||
		strings.TrimSpace(req.AccountCurrency) == "" || !req.AccountNumber.Present() {
		response.Error(c, nominaerrors.ErrMissingFields)
		return
	}
	if !validation.IsNumeric(req.NominaID.String()) {
		response.Error(c, nominaerrors.ErrDocInvalidNominaID)
		return
	}
	id, err := strconv.ParseUint(req.NominaID.String(), 10, 64)
	if err != nil {
		response.Error(c, nominaerrors.ErrDocInvalidNominaID)
		return
	}
	if !validation.IsNumeric(req.AccountNumber.String()) {
		response.Error(c, nominaerrors.ErrDocInvalidAccount)
		return
	}

	doc, err := h.service.BankDocument(c.Request.Context(), uint(id), OriginAccount{
		Type:     strings.TrimSpace(req.AccountType),
		Currency: strings.TrimSpace(req.AccountCurrency),
		Number:   req.AccountNumber.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, doc)
}

func (h *Handler) RequestPayslips(c *gin.Context) {
	id, ok := pathID(c, "id", nominaerrors.ErrInvalidID)
	if !ok {
		return
	}
	res, err := h.service.RequestPayslips(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, res)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	id, ok := pathID(c, "id", nominaerrors.ErrInvalidID)
	if !ok {
		return
	}
	idStaff, ok := pathID(c, "idStaff", nominaerrors.ErrInvalidStaffID)
	if !ok {
		return
	}

	pdf, err := h.service.RenderPayslip(c.Request.Context(), id, idStaff)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=\"volante-"+c.Param("id")+"-"+c.Param("idStaff")+".pdf\"")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// RecentTotals serves the payroll graph: the last cant months, default 6.
func (h *Handler) RecentTotals(c *gin.Context) {
	n := DefaultRecentMonths
	if raw := strings.TrimSpace(c.Query("cant")); raw != "" {
		if !validation.IsNumeric(raw) {
			response.Error(c, nominaerrors.ErrCountNotNumeric)
			return
		}
		v, err := strconv.Atoi(strings.SplitN(raw, ".", 2)[0])
		if err != nil {
			response.Error(c, nominaerrors.ErrCountNotNumeric)
			return
		}
		n = v
	}
	if n <= 0 {
		response.Error(c, nominaerrors.ErrCountNotPositive)
		return
	}
	if n > MaxRecentMonths {
		n = MaxRecentMonths
	}

	items, err := h.service.Recent(c.Request.Context(), n)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}
