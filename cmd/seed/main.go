package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"caminora/internal/database"
	"caminora/internal/domain"
	"caminora/internal/repository"
)

// Seeds a local database with demo data: users, accommodations, routes,
// bikes and a handful of bookings across every payment status.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	routeRepo := repository.NewRouteRepository(db)

	admin := &domain.User{
		Email:     "admin@caminora.app",
		FirstName: "Ana",
		LastName:  "Morales",
		Role:      domain.RoleAdmin,
	}
	mustCreateUser(ctx, userRepo, admin, "admin123")

	host := &domain.User{
		Email:     "host@caminora.app",
		FirstName: "Carlos",
		LastName:  "Vega",
		Role:      domain.RoleHost,
	}
	mustCreateUser(ctx, userRepo, host, "host123")

	client := &domain.User{
		Email:     "cliente@caminora.app",
		FirstName: "Lucía",
		LastName:  "Paz",
		Role:      domain.RoleClient,
	}
	mustCreateUser(ctx, userRepo, client, "cliente123")

	cabin := &domain.Accommodation{
		HostID:        host.ID,
		Name:          "Cabaña del Lago",
		Description:   "Cabaña rústica con vista al lago",
		City:          "Valle de Bravo",
		Address:       "Camino al Embarcadero 12",
		PricePerNight: 1450,
		MaxGuests:     4,
	}
	if err := accommodationRepo.Create(ctx, cabin); err != nil {
		log.Fatal(err)
	}

	loft := &domain.Accommodation{
		HostID:        host.ID,
		Name:          "Loft Centro Histórico",
		City:          "Oaxaca",
		PricePerNight: 980,
		MaxGuests:     2,
	}
	if err := accommodationRepo.Create(ctx, loft); err != nil {
		log.Fatal(err)
	}

	seedBookings(ctx, bookingRepo, client.ID, cabin.ID, loft.ID)
	seedRoutes(ctx, routeRepo)
	seedBikes(ctx, repository.NewBikeRepository(db))

	log.Println("seed completed")
}

func mustCreateUser(ctx context.Context, repo *repository.UserRepository, u *domain.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	u.PasswordHash = string(hash)

	if err := repo.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
}

func seedBookings(ctx context.Context, repo *repository.BookingRepository, userID, cabinID, loftID int64) {
	base := time.Now().AddDate(0, 0, 14)

	bookings := []*domain.Booking{
		{
			AccommodationID: cabinID,
			UserID:          userID,
			CheckIn:         base,
			CheckOut:        base.AddDate(0, 0, 3),
			Guests:          2,
			TotalPrice:      4350,
			Status:          domain.BookingConfirmed,
			PaymentStatus:   domain.PaymentPaid,
		},
		{
			AccommodationID: loftID,
			UserID:          userID,
			CheckIn:         base.AddDate(0, 0, 10),
			CheckOut:        base.AddDate(0, 0, 12),
			Guests:          2,
			TotalPrice:      1960,
			Status:          domain.BookingPending,
			PaymentStatus:   domain.PaymentPending,
		},
		{
			AccommodationID: cabinID,
			UserID:          userID,
			CheckIn:         base.AddDate(0, 1, 0),
			CheckOut:        base.AddDate(0, 1, 2),
			Guests:          3,
			TotalPrice:      2900,
			Status:          domain.BookingCancelled,
			PaymentStatus:   domain.PaymentRefunded,
		},
	}

	for _, b := range bookings {
		if err := repo.Create(ctx, b); err != nil {
			log.Fatal(err)
		}
	}
}

func seedRoutes(ctx context.Context, repo *repository.RouteRepository) {
	minutes := func(m int) *int { return &m }

	routes := []*domain.Route{
		{
			Name:             "Sendero del Mirador",
			Description:      "Subida corta con vista panorámica del valle",
			DistanceKm:       5.2,
			Difficulty:       domain.RouteEasy,
			EstimatedMinutes: minutes(90),
			StartLocation:    "Plaza central",
			EndLocation:      "Mirador norte",
		},
		{
			Name:             "Travesía de los Pinos",
			Description:      "Cruce del bosque de pinos con tramos técnicos",
			DistanceKm:       18.4,
			Difficulty:       domain.RouteHard,
			EstimatedMinutes: minutes(320),
			StartLocation:    "Caseta forestal",
			EndLocation:      "Cascada escondida",
		},
		{
			Name:       "Circuito del Río",
			DistanceKm: 9.0,
			Difficulty: domain.RouteModerate,
		},
	}

	for _, r := range routes {
		if err := repo.Create(ctx, r); err != nil {
			log.Fatal(err)
		}
	}
}

func seedBikes(ctx context.Context, repo *repository.BikeRepository) {
	bikes := []*domain.Bike{
		{Model: "Trek Marlin 5", City: "Valle de Bravo", PricePerHour: 120, Available: true},
		{Model: "Specialized Sirrus", City: "Oaxaca", PricePerHour: 95, Available: true},
		{Model: "Giant Talon 3", City: "Valle de Bravo", PricePerHour: 110, Available: true},
	}

	for _, b := range bikes {
		if err := repo.CreateBike(ctx, b); err != nil {
			log.Fatal(err)
		}
	}
}
