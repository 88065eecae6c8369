// Package fake provides deterministic in-memory providers for tests and
// offline runs. Lookups are keyed by exact, lower-cased names or by rounded
// coordinates; anything not registered behaves like a provider miss.
package fake

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/ports"
)

type Place struct {
	Name   string
	Coords domain.Coordinates
}

// Geocoder resolves registered names; unknown names return domain.ErrNotFound.
type Geocoder struct {
	mu       sync.Mutex
	byName   map[string]domain.Coordinates
	reverse  map[string]string
	failures map[string]error
	nearKm   float64
	names    map[string]string
	calls    int
}

var _ ports.Geocoder = (*Geocoder)(nil)

func NewGeocoder(places []Place) *Geocoder {
	g := &Geocoder{
		byName:   make(map[string]domain.Coordinates, len(places)),
		reverse:  make(map[string]string),
		failures: make(map[string]error),
	}
	g.names = make(map[string]string, len(places))
	for _, p := range places {
		key := strings.ToLower(p.Name)
		g.byName[key] = p.Coords
		g.names[key] = p.Name
	}
	return g
}

// WithNearestReverse answers unregistered reverse lookups with the closest
// known place within maxKm.
func (g *Geocoder) WithNearestReverse(maxKm float64) *Geocoder {
	g.nearKm = maxKm
	return g
}

// WithReverse registers the reverse-geocode answer for a coordinate.
func (g *Geocoder) WithReverse(c domain.Coordinates, name string) *Geocoder {
	g.reverse[coordKey(c)] = name
	return g
}

// FailOn makes lookups of name return err.
func (g *Geocoder) FailOn(name string, err error) *Geocoder {
	g.failures[strings.ToLower(name)] = err
	return g
}

func (g *Geocoder) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *Geocoder) Geocode(ctx context.Context, placeName string) (domain.Coordinates, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w: %w", placeName, domain.ErrLookupFailed, err)
	}

	key := strings.ToLower(strings.TrimSpace(placeName))
	if err, ok := g.failures[key]; ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", placeName, err)
	}
	c, ok := g.byName[key]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", placeName, domain.ErrNotFound)
	}
	return c, nil
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("reverse geocode: %w: %w", domain.ErrLookupFailed, err)
	}
	if name, ok := g.reverse[coordKey(coord)]; ok {
		return name, nil
	}
	if name, ok := g.nearest(coord); ok {
		return name, nil
	}
	return "", fmt.Errorf("reverse geocode %s: %w", coordKey(coord), domain.ErrNotFound)
}

func (g *Geocoder) nearest(coord domain.Coordinates) (string, bool) {
	if g.nearKm <= 0 {
		return "", false
	}

	best, bestKm := "", g.nearKm
	for key, c := range g.byName {
		d := coord.DistanceKm(c)
		if d < bestKm || (d == bestKm && g.names[key] < best) {
			best, bestKm = g.names[key], d
		}
	}
	return best, best != ""
}

// RouteProvider returns the same route for every request, or Err when set.
type RouteProvider struct {
	Summary domain.RouteSummary
	Err     error
}

var _ ports.RouteProvider = (*RouteProvider)(nil)

func (r *RouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteSummary, error) {
	if r.Err != nil {
		return domain.RouteSummary{}, r.Err
	}
	if err := ctx.Err(); err != nil {
		return domain.RouteSummary{}, fmt.Errorf("%w: %w", domain.ErrRoutingFailed, err)
	}
	return r.Summary, nil
}

// POIProvider answers radius searches from results registered per centre
// coordinate and kind set.
type POIProvider struct {
	mu      sync.Mutex
	results map[string][]ports.POI
	fail    map[string]error
	queries []ports.RadiusQuery
}

var _ ports.POIProvider = (*POIProvider)(nil)

func NewPOIProvider() *POIProvider {
	return &POIProvider{
		results: make(map[string][]ports.POI),
		fail:    make(map[string]error),
	}
}

// Add registers the POIs returned for searches around c whose first kind is kind.
func (p *POIProvider) Add(c domain.Coordinates, kind string, pois ...ports.POI) *POIProvider {
	k := poiKey(c, kind)
	p.results[k] = append(p.results[k], pois...)
	return p
}

func (p *POIProvider) FailAt(c domain.Coordinates, kind string, err error) *POIProvider {
	p.fail[poiKey(c, kind)] = err
	return p
}

func (p *POIProvider) Queries() []ports.RadiusQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.RadiusQuery(nil), p.queries...)
}

func (p *POIProvider) RadiusSearch(ctx context.Context, q ports.RadiusQuery) ([]ports.POI, error) {
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("radius search: %w: %w", domain.ErrLookupFailed, err)
	}

	kind := ""
	if len(q.Kinds) > 0 {
		kind = q.Kinds[0]
	}
	k := poiKey(q.Center, kind)
	if err, ok := p.fail[k]; ok {
		return nil, err
	}

	res := p.results[k]
	if q.Limit > 0 && len(res) > q.Limit {
		res = res[:q.Limit]
	}
	return append([]ports.POI(nil), res...), nil
}

func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.4f,%.4f", c.Lon, c.Lat)
}

func poiKey(c domain.Coordinates, kind string) string {
	return coordKey(c) + "|" + kind
}

// LineRouteProvider routes along the great circle between the endpoints,
// inflated by Detour, at a constant speed. The polyline has Points evenly
// spaced coordinates including both endpoints.
type LineRouteProvider struct {
	SpeedKmh float64
	Detour   float64
	Points   int
}

var _ ports.RouteProvider = (*LineRouteProvider)(nil)

func (l *LineRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.RouteSummary{}, fmt.Errorf("%w: %w", domain.ErrRoutingFailed, err)
	}
	if l.SpeedKmh <= 0 {
		return domain.RouteSummary{}, fmt.Errorf("%w: speed must be positive", domain.ErrRoutingFailed)
	}

	detour := l.Detour
	if detour < 1 {
		detour = 1
	}
	n := max(l.Points, 2)

	line := make([]domain.Coordinates, n)
	for i := range line {
		f := float64(i) / float64(n-1)
		line[i] = domain.Coordinates{
			Lon: origin.Lon + f*(destination.Lon-origin.Lon),
			Lat: origin.Lat + f*(destination.Lat-origin.Lat),
		}
	}

	km := origin.DistanceKm(destination) * detour
	return domain.RouteSummary{
		DistanceKm: math.Round(km*100) / 100,
		DurationHr: math.Round(km/l.SpeedKmh*100) / 100,
		Polyline:   line,
	}, nil
}
