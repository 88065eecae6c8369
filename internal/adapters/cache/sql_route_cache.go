package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"github.com/twpayne/go-polyline"
)

// SQLRouteCache is a Postgres-backed cache for origin->destination driving routes.
// Geometry is stored as a precision-5 encoded polyline.
type SQLRouteCache struct {
	DB *sql.DB
}

var _ ports.RouteCache = (*SQLRouteCache)(nil)

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// RouteKey identifies an endpoint at roughly one metre resolution.
func RouteKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lon, c.Lat)
}

func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.RouteSummary, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return domain.RouteSummary{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT distance_km, duration_hr, polyline
    FROM route_cache
    WHERE origin = $1
        AND destination = $2;
	`

	var (
		r       domain.RouteSummary
		encoded string
	)
	err = s.DB.QueryRowContext(ctx, q, RouteKey(origin), RouteKey(destination)).
		Scan(&r.DistanceKm, &r.DurationHr, &encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RouteSummary{}, false, nil
	}
	if err != nil {
		return domain.RouteSummary{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	r.Polyline, err = decodePolyline(encoded)
	if err != nil {
		return domain.RouteSummary{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return r, true, nil
}

func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	r domain.RouteSummary,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (origin, destination, distance_km, duration_hr, polyline)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_hr = EXCLUDED.duration_hr,
		polyline = EXCLUDED.polyline;
	`, RouteKey(origin), RouteKey(destination), r.DistanceKm, r.DurationHr, encodePolyline(r.Polyline))
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}

// encodePolyline stores coordinates as a precision-5 polyline, whose pairs
// are (lat, lon).
func encodePolyline(points []domain.Coordinates) string {
	coords := make([][]float64, 0, len(points))
	for _, c := range points {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

func decodePolyline(encoded string) ([]domain.Coordinates, error) {
	out := []domain.Coordinates{}
	if encoded == "" {
		return out, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	for _, c := range coords {
		out = append(out, domain.Coordinates{Lon: c[1], Lat: c[0]})
	}
	return out, nil
}
