package rental

import (
	"errors"
	"net/http"
	"strconv"

	"caminora/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bikes", h.ListBikes)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/rentals", h.OpenRental)
	rg.POST("/rentals/:id/close", h.CloseRental)
}

func (h *Handler) ListBikes(c *gin.Context) {
	bikes, err := h.service.ListAvailableBikes(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, bikes)
}

func (h *Handler) OpenRental(c *gin.Context) {
	var req OpenRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if uid, ok := c.Get("user_id"); ok {
		if id, ok := uid.(int64); ok {
			req.UserID = id
		}
	}

	rental, err := h.service.OpenRental(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrBikeTaken):
			response.Error(c, http.StatusConflict, "BIKE_TAKEN", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bike not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, rental)
}

func (h *Handler) CloseRental(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental id")
		return
	}

	rental, err := h.service.CloseRental(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyClosed):
			response.Error(c, http.StatusConflict, "ALREADY_CLOSED", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rental not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, rental)
}
