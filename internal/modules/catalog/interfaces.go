package catalog

import (
	"context"

	"caminora/internal/domain"
	"caminora/internal/repository"
)

type AccommodationRepository interface {
	Create(ctx context.Context, a *domain.Accommodation) error
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	List(ctx context.Context, f repository.AccommodationFilter) ([]domain.Accommodation, int, error)
	AddImages(ctx context.Context, accommodationID int64, urls []string) error
}

type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, difficulty string, limit, offset int) ([]domain.Route, int, error)
}
