package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/idx"
)

// LocationService manages the geofence roster. Clock operations validate
// against the canonical location, which is the earliest-created one.
type LocationService struct {
	Store store.Store

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *LocationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateLocation registers a new geofence.
func (s *LocationService) CreateLocation(ctx context.Context, name string, lat, lng, radiusKm float64) (domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Location{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if lat < -90 || lat > 90 {
		return domain.Location{}, fmt.Errorf("%w: latitude must be within [-90, 90]", ErrInvalidInput)
	}
	if lng < -180 || lng > 180 {
		return domain.Location{}, fmt.Errorf("%w: longitude must be within [-180, 180]", ErrInvalidInput)
	}
	if radiusKm <= 0 {
		return domain.Location{}, fmt.Errorf("%w: radius must be positive", ErrInvalidInput)
	}

	now := s.now().UTC()
	location := domain.Location{
		ID:        idx.New().String(),
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radiusKm,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Locations().CreateLocation(ctx, location); err != nil {
		return domain.Location{}, err
	}
	return location, nil
}

// ListLocations returns every geofence, oldest first. The first entry is
// the canonical one.
func (s *LocationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.Store.Locations().ListLocations(ctx)
}

// DeleteLocation removes a geofence. Deleting the canonical location
// promotes the next-oldest one.
func (s *LocationService) DeleteLocation(ctx context.Context, locationID string) error {
	return s.Store.Locations().DeleteLocation(ctx, locationID)
}
