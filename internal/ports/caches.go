package ports

import (
	"context"
	"time"
	"tourism-itinerary-service/internal/domain"
)

// Optional persistent cache for geocode results keyed by normalized place name.
type GeocodeCache interface {
	GetMany(ctx context.Context, names []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Optional persistent cache for driving routes keyed by origin/destination.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteSummary, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, route domain.RouteSummary) error
}

// Optional cache for resolved attraction names keyed by place and limit.
type AttractionCache interface {
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, names []string, ttl time.Duration) error
}
