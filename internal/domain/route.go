package domain

import "time"

type RouteDifficulty string

const (
	RouteEasy     RouteDifficulty = "easy"
	RouteModerate RouteDifficulty = "moderate"
	RouteHard     RouteDifficulty = "hard"
	RouteExpert   RouteDifficulty = "expert"
)

type Route struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description,omitempty" gorm:"type:text"`
	DistanceKm       float64         `json:"distance_km" validate:"gte=0"`
	Difficulty       RouteDifficulty `json:"difficulty"`
	EstimatedMinutes *int            `json:"estimated_minutes,omitempty"`
	StartLocation    string          `json:"start_location,omitempty"`
	EndLocation      string          `json:"end_location,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
