package services

import (
	"context"
	"strings"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"go.uber.org/zap"
)

const (
	settlementSearchRadiusMeters = 20000
	settlementSearchLimit        = 5
	maxCityNameWords             = 3
)

var (
	settlementKinds   = []string{"urban", "other", "settlements"}
	genericNameTokens = []string{"road", "centre"}
)

// StopoverFinder names the cities a driving route passes through.
type StopoverFinder struct {
	geocoder ports.Geocoder
	pois     ports.POIProvider
}

func NewStopoverFinder(geocoder ports.Geocoder, pois ports.POIProvider) *StopoverFinder {
	return &StopoverFinder{geocoder: geocoder, pois: pois}
}

// SampleRoute takes every stride-th point of the polyline, starting with the
// first, where stride = max(1, len(polyline) / (limit+2)).
func SampleRoute(polyline []domain.Coordinates, limit int) []domain.Coordinates {
	if len(polyline) == 0 {
		return []domain.Coordinates{}
	}

	stride := len(polyline) / (limit + 2)
	if stride < 1 {
		stride = 1
	}

	out := make([]domain.Coordinates, 0, len(polyline)/stride+1)
	for i := 0; i < len(polyline); i += stride {
		out = append(out, polyline[i])
	}
	return out
}

// CitiesAlongRoute returns up to limit unique city names in route order.
// Sample points that cannot be named are skipped; this never fails.
func (f *StopoverFinder) CitiesAlongRoute(ctx context.Context, polyline []domain.Coordinates, limit int) []string {
	cities := make([]string, 0, limit)
	if limit <= 0 {
		return cities
	}

	seen := make(map[string]struct{}, limit)
	for _, p := range SampleRoute(polyline, limit) {
		if ctx.Err() != nil {
			break
		}

		name := f.cityAt(ctx, p)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cities = append(cities, name)

		if len(cities) >= limit {
			break
		}
	}

	return cities
}

// cityAt prefers a settlement POI with a short, specific name and falls back
// to reverse geocoding the point.
func (f *StopoverFinder) cityAt(ctx context.Context, p domain.Coordinates) string {
	pois, err := f.pois.RadiusSearch(ctx, ports.RadiusQuery{
		Center:       p,
		RadiusMeters: settlementSearchRadiusMeters,
		Kinds:        settlementKinds,
		Limit:        settlementSearchLimit,
	})
	if err != nil {
		obs.L().Debug("settlement search failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}
	for _, poi := range pois {
		if looksLikeCityName(poi.Name) {
			return poi.Name
		}
	}

	name, err := f.geocoder.ReverseGeocode(ctx, p)
	if err != nil {
		obs.L().Debug("reverse geocode failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		return ""
	}
	return name
}

func looksLikeCityName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(strings.Fields(name)) > maxCityNameWords {
		return false
	}

	lower := strings.ToLower(name)
	for _, t := range genericNameTokens {
		if strings.Contains(lower, t) {
			return false
		}
	}
	return true
}
