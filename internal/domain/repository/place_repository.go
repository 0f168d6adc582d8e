package repository

import (
	"context"

	"travel-agent-service/internal/domain/entity"
)

// GeocodingRepository resolves a place name to coordinates.
// It returns entity.ErrNoResults when the place is unknown.
type GeocodingRepository interface {
	Geocode(ctx context.Context, place string) (*entity.Coordinates, error)
}

// PlaceRepository finds points of interest around a coordinate
type PlaceRepository interface {
	NearbyRestaurants(ctx context.Context, center entity.Coordinates, radiusMeters int) ([]entity.PointOfInterest, error)
}
