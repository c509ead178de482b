package booking

import (
	"context"
	"time"

	"caminora/internal/domain"
	"caminora/internal/repository"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	CheckAvailability(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error)
	GetHostForBooking(ctx context.Context, bookingID int64) (int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	Cancel(ctx context.Context, bookingID int64, reason string) error
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error)
}

// AccommodationRepository exposes the pricing data needed at create time.
type AccommodationRepository interface {
	GetPriceAndCapacity(ctx context.Context, id int64) (float64, int, error)
}

// NotificationSender pushes booking lifecycle events; all calls are
// best-effort.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, hostUserID, bookingID, accommodationID int64, checkIn time.Time) error
	NotifyBookingConfirmed(ctx context.Context, clientUserID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64, reason string) error
}
