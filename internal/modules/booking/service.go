package booking

import (
	"context"
	"math"
	"time"

	"caminora/internal/domain"
	"caminora/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// nightsBetween counts whole nights between check-in and check-out.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

type Service struct {
	bookings       BookingRepository
	accommodations AccommodationRepository
	notifs         NotificationSender
}

func NewService(
	bookings BookingRepository,
	accommodations AccommodationRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings:       bookings,
		accommodations: accommodations,
		notifs:         notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrValidation
	}
	if nightsBetween(req.CheckIn, req.CheckOut) < 1 {
		return nil, ErrValidation
	}

	now := time.Now()
	if req.CheckIn.Before(now) {
		return nil, ErrValidation
	}
	if req.Guests < 1 {
		return nil, ErrValidation
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.AccommodationID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	pricePerNight, maxGuests, err := s.accommodations.GetPriceAndCapacity(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}
	if req.Guests > maxGuests {
		return nil, ErrTooManyGuests
	}

	total := float64(nightsBetween(req.CheckIn, req.CheckOut)) * pricePerNight
	total = math.Round(total*100) / 100

	b := &domain.Booking{
		AccommodationID: req.AccommodationID,
		UserID:          req.UserID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      total,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		Notes:           req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return nil, ErrDoubleBooking
			}
		}
		return nil, err
	}

	// уведомление хозяину после Create, когда b.ID уже известен
	if s.notifs != nil {
		hostID, err := s.bookings.GetHostForBooking(ctx, b.ID)
		if err == nil && hostID > 0 {
			_ = s.notifs.NotifyBookingCreated(ctx, hostID, b.ID, b.AccommodationID, b.CheckIn)
		}
	}

	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.GetUserBookingsWithDetails(ctx, userID, limit, offset)
}

func (s *Service) ConfirmBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, ErrValidation
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(domain.BookingConfirmed)); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingConfirmed(ctx, b.UserID, b.ID)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// CompleteBooking closes out a confirmed stay after check-out.
func (s *Service) CompleteBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrValidation
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(domain.BookingCompleted)); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) CancelBooking(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrValidation
	}

	if err := s.bookings.Cancel(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID int64, status string) (*domain.Booking, error) {
	switch domain.PaymentStatus(status) {
	case domain.PaymentPending, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return nil, ErrValidation
	}

	return s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentStatus(status))
}
