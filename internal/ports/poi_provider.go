package ports

import (
	"context"
	"tourism-itinerary-service/internal/domain"
)

// A point of interest returned by a radius search.
type POI struct {
	Name string
	Rate float64
}

type RadiusQuery struct {
	Center       domain.Coordinates
	RadiusMeters int
	Kinds        []string
	Limit        int
}

// Contract for radius-based points-of-interest search.
type POIProvider interface {
	RadiusSearch(ctx context.Context, q RadiusQuery) ([]POI, error)
}
