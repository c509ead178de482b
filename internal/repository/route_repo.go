package repository

import (
	"context"
	"time"

	"caminora/internal/domain"

	"gorm.io/gorm"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

type routeModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	Name             string    `gorm:"column:name"`
	Description      *string   `gorm:"column:description"`
	DistanceKm       float64   `gorm:"column:distance_km"`
	Difficulty       string    `gorm:"column:difficulty"`
	EstimatedMinutes *int      `gorm:"column:estimated_minutes"`
	StartLocation    *string   `gorm:"column:start_location"`
	EndLocation      *string   `gorm:"column:end_location"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (routeModel) TableName() string { return "routes" }

func toDomainRoute(m routeModel) domain.Route {
	var description, start, end string
	if m.Description != nil {
		description = *m.Description
	}
	if m.StartLocation != nil {
		start = *m.StartLocation
	}
	if m.EndLocation != nil {
		end = *m.EndLocation
	}

	return domain.Route{
		ID:               m.ID,
		Name:             m.Name,
		Description:      description,
		DistanceKm:       m.DistanceKm,
		Difficulty:       domain.RouteDifficulty(m.Difficulty),
		EstimatedMinutes: m.EstimatedMinutes,
		StartLocation:    start,
		EndLocation:      end,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toRouteModel(r *domain.Route) routeModel {
	var description, start, end *string
	if r.Description != "" {
		v := r.Description
		description = &v
	}
	if r.StartLocation != "" {
		v := r.StartLocation
		start = &v
	}
	if r.EndLocation != "" {
		v := r.EndLocation
		end = &v
	}

	return routeModel{
		ID:               r.ID,
		Name:             r.Name,
		Description:      description,
		DistanceKm:       r.DistanceKm,
		Difficulty:       string(r.Difficulty),
		EstimatedMinutes: r.EstimatedMinutes,
		StartLocation:    start,
		EndLocation:      end,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	m := toRouteModel(route)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*route = toDomainRoute(m)
	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	var m routeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	route := toDomainRoute(m)
	return &route, nil
}

func (r *RouteRepository) List(ctx context.Context, difficulty string, limit, offset int) ([]domain.Route, int, error) {
	q := r.db.WithContext(ctx).Model(&routeModel{})
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []routeModel
	tx := q.Order("name ASC").Limit(limit).Offset(offset).Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Route, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoute(m))
	}
	return out, int(total), nil
}

// ListAll feeds the route report: every route, name order.
func (r *RouteRepository) ListAll(ctx context.Context) ([]domain.Route, error) {
	var models []routeModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Route, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoute(m))
	}
	return out, nil
}
