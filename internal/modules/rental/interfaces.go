package rental

import (
	"context"
	"time"

	"caminora/internal/domain"
)

// BikeRepository covers bikes and their rentals.
type BikeRepository interface {
	ListAvailable(ctx context.Context, city string) ([]domain.Bike, error)
	GetBike(ctx context.Context, id int64) (*domain.Bike, error)
	SetAvailable(ctx context.Context, bikeID int64, available bool) error
	CreateRental(ctx context.Context, rental *domain.BikeRental) error
	GetRental(ctx context.Context, id int64) (*domain.BikeRental, error)
	CloseRental(ctx context.Context, rentalID int64, endTime time.Time, finalPrice float64) error
}
