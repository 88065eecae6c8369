package ports

import (
	"context"
	"tourism-itinerary-service/internal/domain"
)

// Contract for resolving place names to coordinates and back.
//
// Implementations return an error wrapping domain.ErrNotFound when the provider
// has no match, and domain.ErrLookupFailed for transient failures. They never
// retry on their own unless explicitly configured to.
type Geocoder interface {
	Geocode(ctx context.Context, placeName string) (domain.Coordinates, error)
	// Return the most specific name available (locality, county, region, name).
	ReverseGeocode(ctx context.Context, coord domain.Coordinates) (string, error)
}

// Contract for driving-route queries.
type RouteProvider interface {
	// Errors wrap domain.ErrRoutingFailed and carry the provider's raw message.
	Route(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteSummary, error)
}
