package repository

import (
	"context"
	"time"

	"caminora/internal/domain"

	"gorm.io/gorm"
)

type BikeRepository struct {
	db *gorm.DB
}

func NewBikeRepository(db *gorm.DB) *BikeRepository {
	return &BikeRepository{db: db}
}

type bikeModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Model        string    `gorm:"column:model"`
	City         string    `gorm:"column:city"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	Available    bool      `gorm:"column:available"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bikeModel) TableName() string { return "bikes" }

type bikeRentalModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	BikeID     int64      `gorm:"column:bike_id"`
	UserID     int64      `gorm:"column:user_id"`
	StartTime  time.Time  `gorm:"column:start_time"`
	EndTime    *time.Time `gorm:"column:end_time"`
	Hours      int        `gorm:"column:hours"`
	TotalPrice float64    `gorm:"column:total_price"`
	Status     string     `gorm:"column:status"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (bikeRentalModel) TableName() string { return "bike_rentals" }

func toDomainBike(m bikeModel) domain.Bike {
	return domain.Bike{
		ID:           m.ID,
		Model:        m.Model,
		City:         m.City,
		PricePerHour: m.PricePerHour,
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainRental(m bikeRentalModel) *domain.BikeRental {
	return &domain.BikeRental{
		ID:         m.ID,
		BikeID:     m.BikeID,
		UserID:     m.UserID,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Hours:      m.Hours,
		TotalPrice: m.TotalPrice,
		Status:     domain.RentalStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, b *domain.Bike) error {
	m := bikeModel{
		Model:        b.Model,
		City:         b.City,
		PricePerHour: b.PricePerHour,
		Available:    b.Available,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = toDomainBike(m)
	return nil
}

func (r *BikeRepository) ListAvailable(ctx context.Context, city string) ([]domain.Bike, error) {
	q := r.db.WithContext(ctx).Where("available = ?", true)
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var models []bikeModel
	tx := q.Order("price_per_hour ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Bike, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBike(m))
	}
	return out, nil
}

func (r *BikeRepository) GetBike(ctx context.Context, id int64) (*domain.Bike, error) {
	var m bikeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBike(m)
	return &b, nil
}

func (r *BikeRepository) SetAvailable(ctx context.Context, bikeID int64, available bool) error {
	return r.db.WithContext(ctx).
		Model(&bikeModel{}).
		Where("id = ?", bikeID).
		Updates(map[string]any{"available": available, "updated_at": time.Now()}).Error
}

func (r *BikeRepository) CreateRental(ctx context.Context, rental *domain.BikeRental) error {
	m := bikeRentalModel{
		BikeID:     rental.BikeID,
		UserID:     rental.UserID,
		StartTime:  rental.StartTime,
		Hours:      rental.Hours,
		TotalPrice: rental.TotalPrice,
		Status:     string(rental.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rental = *toDomainRental(m)
	return nil
}

func (r *BikeRepository) GetRental(ctx context.Context, id int64) (*domain.BikeRental, error) {
	var m bikeRentalModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRental(m), nil
}

func (r *BikeRepository) CloseRental(ctx context.Context, rentalID int64, endTime time.Time, finalPrice float64) error {
	tx := r.db.WithContext(ctx).
		Model(&bikeRentalModel{}).
		Where("id = ? AND status = ?", rentalID, string(domain.RentalActive)).
		Updates(map[string]any{
			"status":      string(domain.RentalClosed),
			"end_time":    endTime,
			"total_price": finalPrice,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
