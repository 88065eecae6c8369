// Package app assembles the planner services from configuration. Both the
// HTTP server and the CLI build their dependency graph here.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tourism-itinerary-service/internal/adapters/cache"
	"tourism-itinerary-service/internal/adapters/opentripmap"
	"tourism-itinerary-service/internal/adapters/ors"
	"tourism-itinerary-service/internal/catalog"
	"tourism-itinerary-service/internal/config"
	"tourism-itinerary-service/internal/platform/db"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"
	"tourism-itinerary-service/internal/services"

	"go.uber.org/zap"
)

// Services is the wired service graph.
type Services struct {
	Catalog   *catalog.Static
	Resolver  *services.AttractionResolver
	Planner   *services.ItineraryPlanner
	Scheduler *services.LocalScheduler

	closers []func() error
}

// Close releases database and Redis connections.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

// Build connects the optional caches and the live providers described by cfg.
// Cache connection failures are fatal: a configured cache is expected to work.
func Build(ctx context.Context, cfg *config.Config) (*Services, error) {
	s := &Services{}

	// Interfaces stay nil (not typed nil) when a cache is disabled.
	var (
		geocodeCache    ports.GeocodeCache
		routeCache      ports.RouteCache
		attractionCache ports.AttractionCache
	)

	if cfg.DatabaseURL != "" {
		sqlDB, err := openCacheDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, sqlDB.Close)
		geocodeCache = cache.NewSQLGeocodeCache(sqlDB)
		routeCache = cache.NewSQLRouteCache(sqlDB)
		obs.L().Info("postgres caches enabled")
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.closers = append(s.closers, rdb.Close)
		attractionCache = cache.NewRedisAttractionCache(rdb)
		obs.L().Info("redis attraction cache enabled", zap.Duration("ttl", cfg.AttractionCacheTTL))
	}

	provider, err := ors.NewORSProvider(ors.Options{
		APIKey:      cfg.ORS.APIKey,
		BaseURL:     cfg.ORS.BaseURL,
		Profile:     cfg.ORS.Profile,
		Timeout:     cfg.ExternalTimeout,
		MaxAttempts: cfg.ORS.MaxAttempts,
	}, geocodeCache, routeCache)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("build: %w", err)
	}

	pois, err := opentripmap.NewClient(cfg.OTM.APIKey, cfg.OTM.BaseURL, cfg.ExternalTimeout)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("build: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("build: %w", err)
	}

	s.wire(cat, provider, provider, pois, attractionCache, cfg)
	return s, nil
}

func (s *Services) wire(
	cat *catalog.Static,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	pois ports.POIProvider,
	attractionCache ports.AttractionCache,
	cfg *config.Config,
) {
	s.Catalog = cat
	s.Resolver = services.NewAttractionResolver(cat, geocoder, pois, attractionCache, cfg.AttractionCacheTTL)
	s.Planner = services.NewItineraryPlanner(
		geocoder,
		routes,
		s.Resolver,
		services.NewStopoverFinder(geocoder, pois),
		cfg.StopoverConcurrency,
	)
	s.Scheduler = services.NewLocalScheduler(cat, geocoder)
}

func openCacheDB(ctx context.Context, url string) (*sql.DB, error) {
	sqlDB, err := db.Open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	if err := cache.InitSchema(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("build: %w", err)
	}
	return sqlDB, nil
}
