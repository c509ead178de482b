package booking

import (
	"context"
	"testing"
	"time"

	"caminora/internal/domain"
	"caminora/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, accommodationID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]repository.UserBookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetHostForBooking(ctx context.Context, bookingID int64) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, bookingID int64, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockAccommodationRepository struct {
	mock.Mock
}

func (m *MockAccommodationRepository) GetPriceAndCapacity(ctx context.Context, id int64) (float64, int, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, hostUserID, bookingID, accommodationID int64, checkIn time.Time) error {
	args := m.Called(ctx, hostUserID, bookingID, accommodationID, checkIn)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, clientUserID, bookingID int64) error {
	args := m.Called(ctx, clientUserID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64, reason string) error {
	args := m.Called(ctx, clientUserID, bookingID, reason)
	return args.Error(0)
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockAccommodations := new(MockAccommodationRepository)
	mockNotifs := new(MockNotificationSender)

	checkIn := time.Now().AddDate(0, 0, 30).Truncate(time.Hour)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut).Return(true, nil)
	mockAccommodations.On("GetPriceAndCapacity", mock.Anything, int64(10)).Return(1450.0, 4, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetHostForBooking", mock.Anything, int64(999)).Return(int64(1), nil)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, int64(1), int64(999), int64(10), checkIn).Return(nil)

	s := NewService(mockBookings, mockAccommodations, mockNotifs)

	b, err := s.CreateBooking(context.Background(), CreateBookingRequest{
		AccommodationID: 10,
		UserID:          5,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          2,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, 4350.0, b.TotalPrice) // 3 nights * 1450
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	mockNotifs.AssertExpectations(t)
}

func TestService_CreateBooking_InvalidDates(t *testing.T) {
	s := NewService(new(MockBookingRepository), new(MockAccommodationRepository), nil)

	checkIn := time.Now().AddDate(0, 0, 30)

	// check-out before check-in
	_, err := s.CreateBooking(context.Background(), CreateBookingRequest{
		AccommodationID: 10, UserID: 5, CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -1), Guests: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// check-in in the past
	past := time.Now().AddDate(0, 0, -10)
	_, err = s.CreateBooking(context.Background(), CreateBookingRequest{
		AccommodationID: 10, UserID: 5, CheckIn: past, CheckOut: past.AddDate(0, 0, 2), Guests: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_NotAvailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	checkIn := time.Now().AddDate(0, 0, 30)
	checkOut := checkIn.AddDate(0, 0, 2)

	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut).Return(false, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), nil)

	_, err := s.CreateBooking(context.Background(), CreateBookingRequest{
		AccommodationID: 10, UserID: 5, CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
	})
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateBooking_TooManyGuests(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockAccommodations := new(MockAccommodationRepository)

	checkIn := time.Now().AddDate(0, 0, 30)
	checkOut := checkIn.AddDate(0, 0, 2)

	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut).Return(true, nil)
	mockAccommodations.On("GetPriceAndCapacity", mock.Anything, int64(10)).Return(980.0, 2, nil)

	s := NewService(mockBookings, mockAccommodations, nil)

	_, err := s.CreateBooking(context.Background(), CreateBookingRequest{
		AccommodationID: 10, UserID: 5, CheckIn: checkIn, CheckOut: checkOut, Guests: 5,
	})
	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestService_CancelBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	existing := &domain.Booking{ID: 7, UserID: 5, Status: domain.BookingConfirmed}
	cancelled := &domain.Booking{ID: 7, UserID: 5, Status: domain.BookingCancelled}

	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(existing, nil).Once()
	mockBookings.On("Cancel", mock.Anything, int64(7), "cambio de planes").Return(nil)
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, int64(5), int64(7), "cambio de planes").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(cancelled, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), mockNotifs)

	b, err := s.CancelBooking(context.Background(), 7, "cambio de planes")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_CompleteBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	confirmed := &domain.Booking{ID: 7, Status: domain.BookingConfirmed}
	completed := &domain.Booking{ID: 7, Status: domain.BookingCompleted}

	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(confirmed, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(7), string(domain.BookingCompleted)).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(completed, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), nil)

	b, err := s.CompleteBooking(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
}

func TestService_CompleteBooking_RequiresConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Booking{ID: 7, Status: domain.BookingPending}, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), nil)

	_, err := s.CompleteBooking(context.Background(), 7)
	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelBooking_RequiresReason(t *testing.T) {
	s := NewService(new(MockBookingRepository), new(MockAccommodationRepository), nil)

	_, err := s.CancelBooking(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CancelBooking_AlreadyCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Booking{ID: 7, Status: domain.BookingCancelled}, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), nil)

	_, err := s.CancelBooking(context.Background(), 7, "de nuevo")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdatePaymentStatus_RejectsUnknown(t *testing.T) {
	s := NewService(new(MockBookingRepository), new(MockAccommodationRepository), nil)

	_, err := s.UpdatePaymentStatus(context.Background(), 7, "disputed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdatePaymentStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("UpdatePaymentStatus", mock.Anything, int64(7), domain.PaymentPaid).
		Return(&domain.Booking{ID: 7, PaymentStatus: domain.PaymentPaid}, nil)

	s := NewService(mockBookings, new(MockAccommodationRepository), nil)

	b, err := s.UpdatePaymentStatus(context.Background(), 7, "paid")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}
