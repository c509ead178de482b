package report

import (
	"errors"
	"net/http"
	"strconv"

	"caminora/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/reports/financial", h.GetFinancialReport)
	admin.POST("/reports/bookings/:id/invoice", h.GenerateInvoice)
	admin.POST("/reports/routes/document", h.GenerateRouteReport)
}

func (h *Handler) GetFinancialReport(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	report, err := h.service.FinancialReport(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, report)
}

func (h *Handler) GenerateInvoice(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	result, err := h.service.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GenerateRouteReport(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	result, err := h.service.GenerateRouteReport(c.Request.Context())
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGenerationInProgress):
		response.Error(c, http.StatusConflict, "GENERATION_IN_PROGRESS", "Document generation already in progress")
	case errors.Is(err, ErrPermissionDenied):
		response.Error(c, http.StatusInternalServerError, "PERMISSION_DENIED", err.Error())
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
	}
}

func isAdmin(c *gin.Context) bool {
	role, ok := c.Get("role")
	if !ok {
		return false
	}
	r, ok := role.(string)
	return ok && r == "admin"
}
