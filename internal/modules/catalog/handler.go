package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"caminora/internal/pkg/response"
	"caminora/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public discovery endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/accommodations", h.ListAccommodations)
	rg.GET("/accommodations/:id", h.GetAccommodation)
	rg.GET("/routes", h.ListRoutes)
	rg.GET("/routes/:id", h.GetRoute)
}

// RegisterProtectedRoutes mounts endpoints that need an authenticated user.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/accommodations", h.CreateAccommodation)
	rg.POST("/routes", h.CreateRoute)
}

func (h *Handler) ListAccommodations(c *gin.Context) {
	guests, _ := strconv.Atoi(c.Query("guests"))
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.service.ListAccommodations(c.Request.Context(), repository.AccommodationFilter{
		City:     c.Query("city"),
		Guests:   guests,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetAccommodation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation id")
		return
	}

	a, err := h.service.GetAccommodation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) CreateAccommodation(c *gin.Context) {
	var req CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	uid, ok := c.Get("user_id")
	hostID, cast := uid.(int64)
	if !ok || !cast {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user")
		return
	}

	result, err := h.service.CreateAccommodation(c.Request.Context(), hostID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", err.Error())
		return
	}

	if result.Warning != "" {
		response.SuccessWithWarning(c, http.StatusCreated, result.Accommodation, result.Warning)
		return
	}
	response.Success(c, http.StatusCreated, result.Accommodation)
}

func (h *Handler) ListRoutes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.service.ListRoutes(c.Request.Context(), c.Query("difficulty"), limit, offset)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown difficulty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Items: items, Total: total})
}

func (h *Handler) GetRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid route id")
		return
	}

	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, route)
}

func (h *Handler) CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid route data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, route)
}
