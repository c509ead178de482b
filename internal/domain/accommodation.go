package domain

import "time"

type Accommodation struct {
	ID            int64     `json:"id"`
	HostID        int64     `json:"host_id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	City          string    `json:"city" validate:"required"`
	Address       string    `json:"address,omitempty"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	MaxGuests     int       `json:"max_guests" validate:"required,gte=1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Связи
	Host   *User                `json:"host,omitempty" gorm:"foreignKey:HostID"`
	Images []AccommodationImage `json:"images,omitempty" gorm:"foreignKey:AccommodationID"`
}

type AccommodationImage struct {
	ID              int64     `json:"id"`
	AccommodationID int64     `json:"accommodation_id"`
	URL             string    `json:"url" validate:"required"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}
