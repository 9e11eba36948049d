package service

import (
	"context"

	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/pkg/geo"
)

// ILocationService resolves addresses to coordinates, best effort. A nil
// pair means the address could not be resolved; callers store nulls.
type ILocationService interface {
	Resolve(ctx context.Context, address string) (lat, lng *float64)
}

type locationService struct {
	geocoder *geo.Geocoder
	logger   logger.ILogger
}

func NewLocationService(geocoder *geo.Geocoder, log logger.ILogger) ILocationService {
	return &locationService{geocoder: geocoder, logger: log}
}

func (s *locationService) Resolve(ctx context.Context, address string) (*float64, *float64) {
	if address == "" || s.geocoder == nil || !s.geocoder.Enabled() {
		return nil, nil
	}

	lat, lng, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Warn("Location", "Geocoding failed", map[string]interface{}{
			"address": address,
			"error":   err.Error(),
		})
		return nil, nil
	}
	return &lat, &lng
}
