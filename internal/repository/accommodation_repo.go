package repository

import (
	"context"
	"time"

	"caminora/internal/domain"

	"gorm.io/gorm"
)

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

type accommodationModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	HostID        int64     `gorm:"column:host_id"`
	Name          string    `gorm:"column:name"`
	Description   *string   `gorm:"column:description"`
	City          string    `gorm:"column:city"`
	Address       *string   `gorm:"column:address"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	MaxGuests     int       `gorm:"column:max_guests"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (accommodationModel) TableName() string { return "accommodations" }

type accommodationImageModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	AccommodationID int64     `gorm:"column:accommodation_id"`
	URL             string    `gorm:"column:url"`
	Position        int       `gorm:"column:position"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (accommodationImageModel) TableName() string { return "accommodation_images" }

func toDomainAccommodation(m accommodationModel) *domain.Accommodation {
	var description, address string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Address != nil {
		address = *m.Address
	}

	return &domain.Accommodation{
		ID:            m.ID,
		HostID:        m.HostID,
		Name:          m.Name,
		Description:   description,
		City:          m.City,
		Address:       address,
		PricePerNight: m.PricePerNight,
		MaxGuests:     m.MaxGuests,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAccommodationModel(a *domain.Accommodation) accommodationModel {
	var description, address *string
	if a.Description != "" {
		v := a.Description
		description = &v
	}
	if a.Address != "" {
		v := a.Address
		address = &v
	}

	return accommodationModel{
		ID:            a.ID,
		HostID:        a.HostID,
		Name:          a.Name,
		Description:   description,
		City:          a.City,
		Address:       address,
		PricePerNight: a.PricePerNight,
		MaxGuests:     a.MaxGuests,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	m := toAccommodationModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccommodation(m)
	return nil
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var m accommodationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	a := toDomainAccommodation(m)

	var images []accommodationImageModel
	tx = r.db.WithContext(ctx).
		Where("accommodation_id = ?", id).
		Order("position ASC").
		Find(&images)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, img := range images {
		a.Images = append(a.Images, domain.AccommodationImage{
			ID:              img.ID,
			AccommodationID: img.AccommodationID,
			URL:             img.URL,
			Position:        img.Position,
			CreatedAt:       img.CreatedAt,
		})
	}

	return a, nil
}

type AccommodationFilter struct {
	City     string
	Guests   int
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
}

func (r *AccommodationRepository) List(ctx context.Context, f AccommodationFilter) ([]domain.Accommodation, int, error) {
	q := r.db.WithContext(ctx).Model(&accommodationModel{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Guests > 0 {
		q = q.Where("max_guests >= ?", f.Guests)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []accommodationModel
	tx := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Accommodation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAccommodation(m))
	}
	return out, int(total), nil
}

func (r *AccommodationRepository) GetPriceAndCapacity(ctx context.Context, id int64) (float64, int, error) {
	var m accommodationModel
	tx := r.db.WithContext(ctx).Select("price_per_night", "max_guests").First(&m, id)
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	return m.PricePerNight, m.MaxGuests, nil
}

func (r *AccommodationRepository) AddImages(ctx context.Context, accommodationID int64, urls []string) error {
	models := make([]accommodationImageModel, 0, len(urls))
	for i, u := range urls {
		models = append(models, accommodationImageModel{
			AccommodationID: accommodationID,
			URL:             u,
			Position:        i,
		})
	}
	return r.db.WithContext(ctx).Create(&models).Error
}
