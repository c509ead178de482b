package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"caminora/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBikeRepository struct {
	mock.Mock
}

func (m *MockBikeRepository) ListAvailable(ctx context.Context, city string) ([]domain.Bike, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) GetBike(ctx context.Context, id int64) (*domain.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) SetAvailable(ctx context.Context, bikeID int64, available bool) error {
	args := m.Called(ctx, bikeID, available)
	return args.Error(0)
}

func (m *MockBikeRepository) CreateRental(ctx context.Context, rental *domain.BikeRental) error {
	args := m.Called(ctx, rental)
	if rental != nil {
		rental.ID = 55
	}
	return args.Error(0)
}

func (m *MockBikeRepository) GetRental(ctx context.Context, id int64) (*domain.BikeRental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BikeRental), args.Error(1)
}

func (m *MockBikeRepository) CloseRental(ctx context.Context, rentalID int64, endTime time.Time, finalPrice float64) error {
	args := m.Called(ctx, rentalID, endTime, finalPrice)
	return args.Error(0)
}

func TestService_OpenRental(t *testing.T) {
	bikes := new(MockBikeRepository)
	bikes.On("GetBike", mock.Anything, int64(3)).Return(&domain.Bike{ID: 3, PricePerHour: 120, Available: true}, nil)
	bikes.On("CreateRental", mock.Anything, mock.Anything).Return(nil)
	bikes.On("SetAvailable", mock.Anything, int64(3), false).Return(nil)

	s := NewService(bikes)

	rental, err := s.OpenRental(context.Background(), OpenRentalRequest{BikeID: 3, UserID: 5, Hours: 4})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), rental.ID)
	assert.Equal(t, 480.0, rental.TotalPrice) // 4h * 120
	assert.Equal(t, domain.RentalActive, rental.Status)
	bikes.AssertExpectations(t)
}

func TestService_OpenRental_BikeTaken(t *testing.T) {
	bikes := new(MockBikeRepository)
	bikes.On("GetBike", mock.Anything, int64(3)).Return(&domain.Bike{ID: 3, Available: false}, nil)

	s := NewService(bikes)

	_, err := s.OpenRental(context.Background(), OpenRentalRequest{BikeID: 3, UserID: 5, Hours: 2})
	assert.ErrorIs(t, err, ErrBikeTaken)
	bikes.AssertNotCalled(t, "CreateRental", mock.Anything, mock.Anything)
}

func TestService_OpenRental_InsertFailureReleasesBike(t *testing.T) {
	bikes := new(MockBikeRepository)
	bikes.On("GetBike", mock.Anything, int64(3)).Return(&domain.Bike{ID: 3, PricePerHour: 120, Available: true}, nil)
	bikes.On("SetAvailable", mock.Anything, int64(3), false).Return(nil)
	bikes.On("CreateRental", mock.Anything, mock.Anything).Return(errors.New("db down"))
	bikes.On("SetAvailable", mock.Anything, int64(3), true).Return(nil)

	s := NewService(bikes)

	_, err := s.OpenRental(context.Background(), OpenRentalRequest{BikeID: 3, UserID: 5, Hours: 2})

	assert.EqualError(t, err, "db down")
	// the reservation is rolled back so the bike stays rentable
	bikes.AssertCalled(t, "SetAvailable", mock.Anything, int64(3), true)
}

func TestService_CloseRental_SettlesActualDuration(t *testing.T) {
	bikes := new(MockBikeRepository)

	started := time.Now().Add(-150 * time.Minute) // 2.5h ago -> charged 3h
	active := &domain.BikeRental{ID: 55, BikeID: 3, StartTime: started, Hours: 2, Status: domain.RentalActive}
	closed := &domain.BikeRental{ID: 55, BikeID: 3, Status: domain.RentalClosed, TotalPrice: 360}

	bikes.On("GetRental", mock.Anything, int64(55)).Return(active, nil).Once()
	bikes.On("GetBike", mock.Anything, int64(3)).Return(&domain.Bike{ID: 3, PricePerHour: 120}, nil)
	bikes.On("CloseRental", mock.Anything, int64(55), mock.Anything, 360.0).Return(nil)
	bikes.On("SetAvailable", mock.Anything, int64(3), true).Return(nil)
	bikes.On("GetRental", mock.Anything, int64(55)).Return(closed, nil)

	s := NewService(bikes)

	rental, err := s.CloseRental(context.Background(), 55)

	assert.NoError(t, err)
	assert.Equal(t, domain.RentalClosed, rental.Status)
	assert.Equal(t, 360.0, rental.TotalPrice)
	bikes.AssertExpectations(t)
}

func TestService_CloseRental_AlreadyClosed(t *testing.T) {
	bikes := new(MockBikeRepository)
	bikes.On("GetRental", mock.Anything, int64(55)).
		Return(&domain.BikeRental{ID: 55, Status: domain.RentalClosed}, nil)

	s := NewService(bikes)

	_, err := s.CloseRental(context.Background(), 55)
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}
