package catalog

import (
	"context"
	"log"
	"strings"

	"caminora/internal/domain"
	"caminora/internal/repository"
)

type Service struct {
	accommodations AccommodationRepository
	routes         RouteRepository
}

func NewService(accommodations AccommodationRepository, routes RouteRepository) *Service {
	return &Service{
		accommodations: accommodations,
		routes:         routes,
	}
}

// -------------------- Accommodations --------------------

func (s *Service) ListAccommodations(ctx context.Context, f repository.AccommodationFilter) ([]domain.Accommodation, int, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.accommodations.List(ctx, f)
}

func (s *Service) GetAccommodation(ctx context.Context, id int64) (*domain.Accommodation, error) {
	return s.accommodations.GetByID(ctx, id)
}

// CreateAccommodation creates the listing and then its image rows.
// Image failure is a partial failure: the listing is kept and the
// caller gets a warning instead of a rollback.
func (s *Service) CreateAccommodation(ctx context.Context, hostID int64, req CreateAccommodationRequest) (*CreateAccommodationResult, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.City) == "" {
		return nil, ErrValidation
	}
	if req.PricePerNight < 0 || req.MaxGuests < 1 {
		return nil, ErrValidation
	}

	a := &domain.Accommodation{
		HostID:        hostID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		City:          strings.TrimSpace(req.City),
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
	}

	if err := s.accommodations.Create(ctx, a); err != nil {
		return nil, err
	}

	result := &CreateAccommodationResult{Accommodation: a}

	if len(req.ImageURLs) > 0 {
		if err := s.accommodations.AddImages(ctx, a.ID, req.ImageURLs); err != nil {
			log.Printf("catalog: accommodation %d created but images failed: %v", a.ID, err)
			result.Warning = "El alojamiento se creó pero las imágenes no pudieron guardarse"
		}
	}

	return result, nil
}

// -------------------- Routes --------------------

func (s *Service) ListRoutes(ctx context.Context, difficulty string, limit, offset int) ([]domain.Route, int, error) {
	if difficulty != "" {
		switch domain.RouteDifficulty(difficulty) {
		case domain.RouteEasy, domain.RouteModerate, domain.RouteHard, domain.RouteExpert:
		default:
			return nil, 0, ErrValidation
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.routes.List(ctx, difficulty, limit, offset)
}

func (s *Service) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *Service) CreateRoute(ctx context.Context, req CreateRouteRequest) (*domain.Route, error) {
	switch domain.RouteDifficulty(req.Difficulty) {
	case domain.RouteEasy, domain.RouteModerate, domain.RouteHard, domain.RouteExpert:
	default:
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.Name) == "" || req.DistanceKm < 0 {
		return nil, ErrValidation
	}

	route := &domain.Route{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		DistanceKm:       req.DistanceKm,
		Difficulty:       domain.RouteDifficulty(req.Difficulty),
		EstimatedMinutes: req.EstimatedMinutes,
		StartLocation:    req.StartLocation,
		EndLocation:      req.EndLocation,
	}

	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}
