package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"missing-person-tracker/internal/config"
)

type Service interface {
	// Geocode resolves a free-text place. ok is false when nothing matched.
	Geocode(ctx context.Context, address string) (lat, lng float64, ok bool, err error)
}

type service struct {
	client *maps.Client
}

func NewService(cfg *config.Config) (Service, error) {
	if cfg.GoogleMapsAPIKey == "" {
		return noopService{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(cfg.GoogleMapsAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &service{client: client}, nil
}

func (s *service) Geocode(ctx context.Context, address string) (float64, float64, bool, error) {
	resp, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(resp) == 0 {
		return 0, 0, false, nil
	}
	loc := resp[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}

type noopService struct{}

func (noopService) Geocode(context.Context, string) (float64, float64, bool, error) {
	return 0, 0, false, nil
}
