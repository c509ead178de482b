package rental

import (
	"context"
	"log"
	"math"
	"time"

	"caminora/internal/domain"
)

type Service struct {
	bikes BikeRepository
}

func NewService(bikes BikeRepository) *Service {
	return &Service{bikes: bikes}
}

func (s *Service) ListAvailableBikes(ctx context.Context, city string) ([]domain.Bike, error) {
	return s.bikes.ListAvailable(ctx, city)
}

// OpenRental reserves a bike for the requested hours at the bike's
// hourly rate. The price is an estimate; closing recomputes it from
// the actual duration.
func (s *Service) OpenRental(ctx context.Context, req OpenRentalRequest) (*domain.BikeRental, error) {
	if req.Hours < 1 {
		return nil, ErrValidation
	}

	bike, err := s.bikes.GetBike(ctx, req.BikeID)
	if err != nil {
		return nil, err
	}
	if !bike.Available {
		return nil, ErrBikeTaken
	}

	total := float64(req.Hours) * bike.PricePerHour
	total = math.Round(total*100) / 100

	rental := &domain.BikeRental{
		BikeID:     req.BikeID,
		UserID:     req.UserID,
		StartTime:  time.Now(),
		Hours:      req.Hours,
		TotalPrice: total,
		Status:     domain.RentalActive,
	}

	// reserve the bike before inserting the rental so a failed insert
	// never leaves an active rental on a bike still listed as available
	if err := s.bikes.SetAvailable(ctx, req.BikeID, false); err != nil {
		return nil, err
	}

	if err := s.bikes.CreateRental(ctx, rental); err != nil {
		if relErr := s.bikes.SetAvailable(ctx, req.BikeID, true); relErr != nil {
			log.Printf("rental: bike %d left unavailable after failed rental insert: %v", req.BikeID, relErr)
		}
		return nil, err
	}

	return rental, nil
}

// CloseRental releases the bike and settles the final price from the
// actual duration, charging started hours in full.
func (s *Service) CloseRental(ctx context.Context, rentalID int64) (*domain.BikeRental, error) {
	rental, err := s.bikes.GetRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalActive {
		return nil, ErrAlreadyClosed
	}

	bike, err := s.bikes.GetBike(ctx, rental.BikeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hours := int(math.Ceil(now.Sub(rental.StartTime).Hours()))
	if hours < 1 {
		hours = 1
	}

	final := float64(hours) * bike.PricePerHour
	final = math.Round(final*100) / 100

	if err := s.bikes.CloseRental(ctx, rentalID, now, final); err != nil {
		return nil, err
	}

	if err := s.bikes.SetAvailable(ctx, rental.BikeID, true); err != nil {
		return nil, err
	}

	return s.bikes.GetRental(ctx, rentalID)
}
