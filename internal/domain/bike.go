package domain

import "time"

type RentalStatus string

const (
	RentalActive RentalStatus = "active"
	RentalClosed RentalStatus = "closed"
)

type Bike struct {
	ID           int64     `json:"id"`
	Model        string    `json:"model" validate:"required"`
	City         string    `json:"city" validate:"required"`
	PricePerHour float64   `json:"price_per_hour" validate:"required,gte=0"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BikeRental struct {
	ID         int64        `json:"id"`
	BikeID     int64        `json:"bike_id" validate:"required"`
	UserID     int64        `json:"user_id" validate:"required"`
	StartTime  time.Time    `json:"start_time"`
	EndTime    *time.Time   `json:"end_time,omitempty"`
	Hours      int          `json:"hours" validate:"required,gte=1"`
	TotalPrice float64      `json:"total_price"`
	Status     RentalStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	// Связи
	Bike *Bike `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
