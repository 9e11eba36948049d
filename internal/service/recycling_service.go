package service

import (
	"context"
	"sort"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"
	"ecotrack-be/pkg/geo"
)

const (
	defaultNearbyRadiusKm = 10
	defaultNearbyLimit    = 10
)

type IRecyclingService interface {
	ListCenters(ctx context.Context, userLat, userLng *float64) ([]dto.RecyclingCenterResponse, error)
	NearbyCenters(ctx context.Context, lat, lng, radiusKm float64) ([]dto.RecyclingCenterResponse, error)
}

type recyclingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecyclingService(uowFactory unitofwork.RepositoryFactory) IRecyclingService {
	return &recyclingService{uowFactory: uowFactory}
}

func centerToResponse(c *entity.RecyclingCenter, distanceKm *float64) dto.RecyclingCenterResponse {
	return dto.RecyclingCenterResponse{
		Id:           c.Id,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		AcceptsTypes: c.AcceptsTypes,
		Hours:        c.Hours,
		DistanceKm:   distanceKm,
	}
}

// ListCenters returns active centers. When the caller's coordinates are
// known the list is annotated with distances and sorted nearest first.
func (s *recyclingService) ListCenters(ctx context.Context, userLat, userLng *float64) ([]dto.RecyclingCenterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	centers, err := uow.RecyclingCenterRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecyclingCenterResponse, 0, len(centers))
	for _, c := range centers {
		var distance *float64
		if userLat != nil && userLng != nil {
			d := geo.DistanceKm(*userLat, *userLng, c.Latitude, c.Longitude)
			distance = &d
		}
		out = append(out, centerToResponse(c, distance))
	}

	if userLat != nil && userLng != nil {
		sort.Slice(out, func(i, j int) bool { return *out[i].DistanceKm < *out[j].DistanceKm })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out, nil
}

func (s *recyclingService) NearbyCenters(ctx context.Context, lat, lng, radiusKm float64) ([]dto.RecyclingCenterResponse, error) {
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	centers, err := uow.RecyclingCenterRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecyclingCenterResponse, 0)
	for _, c := range centers {
		d := geo.DistanceKm(lat, lng, c.Latitude, c.Longitude)
		if d <= radiusKm {
			distance := d
			out = append(out, centerToResponse(c, &distance))
		}
	}

	sort.Slice(out, func(i, j int) bool { return *out[i].DistanceKm < *out[j].DistanceKm })
	if len(out) > defaultNearbyLimit {
		out = out[:defaultNearbyLimit]
	}
	return out, nil
}
