package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
	"tourism-itinerary-service/internal/catalog"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"go.uber.org/zap"
)

const (
	attractionSearchRadiusMeters = 20000
	attractionSearchLimit        = 50
)

var attractionKinds = []string{"architecture", "historic", "cultural", "religion"}

// AttractionResolver ranks attractions for a place: curated names for
// well-known cities, otherwise a radius POI search around the geocoded place.
type AttractionResolver struct {
	catalog  ports.Catalog
	geocoder ports.Geocoder
	pois     ports.POIProvider
	cache    ports.AttractionCache
	cacheTTL time.Duration
}

// NewAttractionResolver builds a resolver. cache may be nil.
func NewAttractionResolver(
	catalog ports.Catalog,
	geocoder ports.Geocoder,
	pois ports.POIProvider,
	cache ports.AttractionCache,
	cacheTTL time.Duration,
) *AttractionResolver {
	return &AttractionResolver{
		catalog:  catalog,
		geocoder: geocoder,
		pois:     pois,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// AttractionsFor never fails: any lookup failure degrades to an empty list
// and is logged.
func (r *AttractionResolver) AttractionsFor(ctx context.Context, place string, limit int) []domain.Attraction {
	attractions, err := r.Resolve(ctx, place, limit)
	if err != nil {
		obs.L().Info("attraction lookup degraded",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("place", place),
			zap.Bool("not_found", errors.Is(err, domain.ErrNotFound)),
			zap.Error(err),
		)
		return []domain.Attraction{}
	}
	return attractions
}

// Resolve returns at most limit attractions for place. Errors wrap
// domain.ErrNotFound or domain.ErrLookupFailed so callers can decide whether
// a retry is worthwhile.
func (r *AttractionResolver) Resolve(ctx context.Context, place string, limit int) ([]domain.Attraction, error) {
	if limit <= 0 {
		return []domain.Attraction{}, nil
	}

	if names, ok := r.catalog.CuratedAttractions(place); ok {
		if len(names) > limit {
			names = names[:limit]
		}
		return domain.AttractionsFromNames(names), nil
	}

	key := catalog.Key(place) + "|" + strconv.Itoa(limit)
	if r.cache != nil {
		names, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			obs.L().Warn("attraction cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return domain.AttractionsFromNames(names), nil
		}
	}

	center, err := r.geocoder.Geocode(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("resolve attractions for %q: %w", place, err)
	}

	names, err := r.NamesNear(ctx, center, limit)
	if err != nil {
		return nil, fmt.Errorf("resolve attractions for %q: %w", place, err)
	}

	if r.cache != nil && len(names) > 0 {
		if err := r.cache.Set(ctx, key, names, r.cacheTTL); err != nil {
			obs.L().Warn("attraction cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return domain.AttractionsFromNames(names), nil
}

// NamesNear searches cultural places within 20 km of center, ranked by the
// provider's popularity rate (descending) and deduplicated by name.
func (r *AttractionResolver) NamesNear(ctx context.Context, center domain.Coordinates, limit int) ([]string, error) {
	pois, err := r.pois.RadiusSearch(ctx, ports.RadiusQuery{
		Center:       center,
		RadiusMeters: attractionSearchRadiusMeters,
		Kinds:        attractionKinds,
		Limit:        attractionSearchLimit,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pois, func(i, j int) bool { return pois[i].Rate > pois[j].Rate })

	seen := make(map[string]struct{}, len(pois))
	names := make([]string, 0, limit)
	for _, p := range pois {
		if len(names) >= limit {
			break
		}
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}

	return names, nil
}
