package catalog

import "caminora/internal/domain"

type CreateAccommodationRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	City          string   `json:"city" binding:"required"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gte=0"`
	MaxGuests     int      `json:"max_guests" binding:"required,gte=1"`
	ImageURLs     []string `json:"image_urls"`
}

// CreateAccommodationResult carries a non-empty Warning when the
// accommodation itself was created but its images were not.
type CreateAccommodationResult struct {
	Accommodation *domain.Accommodation
	Warning       string
}

type CreateRouteRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	DistanceKm       float64 `json:"distance_km" binding:"required,gte=0"`
	Difficulty       string  `json:"difficulty" binding:"required"`
	EstimatedMinutes *int    `json:"estimated_minutes"`
	StartLocation    string  `json:"start_location"`
	EndLocation      string  `json:"end_location"`
}

type ListResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}
