package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const (
	destinationLookupLimit  = 10
	destinationKeep         = 5
	stopoverLimit           = 5
	stopoverLookupLimit     = 5
	stopoverKeep            = 3
	defaultStopoverParallel = 4
)

// ItineraryPlanner orchestrates geocoding, routing and attraction lookups
// into a TripPlan. It holds no per-request state and is safe for concurrent use.
type ItineraryPlanner struct {
	geocoder    ports.Geocoder
	routes      ports.RouteProvider
	resolver    *AttractionResolver
	stopovers   *StopoverFinder
	concurrency int
}

func NewItineraryPlanner(
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	resolver *AttractionResolver,
	stopovers *StopoverFinder,
	concurrency int,
) *ItineraryPlanner {
	if concurrency <= 0 {
		concurrency = defaultStopoverParallel
	}
	return &ItineraryPlanner{
		geocoder:    geocoder,
		routes:      routes,
		resolver:    resolver,
		stopovers:   stopovers,
		concurrency: concurrency,
	}
}

type PlanItineraryRequest struct {
	StartLocation        string
	EndLocation          string
	TotalAvailableTimeHr float64
	Mood                 domain.Mood
}

func (r PlanItineraryRequest) Validate() error {
	if strings.TrimSpace(r.StartLocation) == "" || strings.TrimSpace(r.EndLocation) == "" {
		return fmt.Errorf("%w: start and end locations are required", domain.ErrInvalidInput)
	}
	if r.TotalAvailableTimeHr < 0 {
		return fmt.Errorf("%w: totalAvailableTimeHr must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// PlanItinerary builds a TripPlan. Only geocoding of the endpoints and the
// route request are fatal and return *domain.PlanningError; attraction and
// stopover failures leave empty sections in the plan.
func (p *ItineraryPlanner) PlanItinerary(ctx context.Context, req PlanItineraryRequest) (plan domain.TripPlan, err error) {
	defer obs.Time(ctx, "PlanItinerary")(&err)

	if err := req.Validate(); err != nil {
		return domain.TripPlan{}, err
	}
	if req.Mood == "" {
		req.Mood = domain.MoodNeutral
	}

	start, err := p.geocoder.Geocode(ctx, req.StartLocation)
	if err != nil {
		return domain.TripPlan{}, &domain.PlanningError{Kind: domain.InvalidLocation, Location: req.StartLocation, Err: err}
	}
	end, err := p.geocoder.Geocode(ctx, req.EndLocation)
	if err != nil {
		return domain.TripPlan{}, &domain.PlanningError{Kind: domain.InvalidLocation, Location: req.EndLocation, Err: err}
	}

	route, err := p.routes.Route(ctx, start, end)
	if err != nil {
		return domain.TripPlan{}, &domain.PlanningError{Kind: domain.RoutingFailed, Err: err}
	}

	destination := keepFirst(
		FilterByMood(p.resolver.AttractionsFor(ctx, req.EndLocation, destinationLookupLimit), req.Mood),
		destinationKeep,
	)

	cities := p.stopovers.CitiesAlongRoute(ctx, route.Polyline, stopoverLimit)
	stopoverPlans := p.planStopovers(ctx, cities, req.Mood)

	// A deadline only degrades the lookups; a cancelled caller gets no plan.
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return domain.TripPlan{}, err
	}

	options := EstimateTransport(route.DistanceKm)
	var optimal *domain.TransportOption
	if best, ok := SelectOptimalTransport(options, req.TotalAvailableTimeHr); ok {
		optimal = &best
	}

	return domain.TripPlan{
		StartLocation:          req.StartLocation,
		EndLocation:            req.EndLocation,
		Mood:                   req.Mood,
		DistanceKm:             route.DistanceKm,
		DrivingTimeHr:          route.DurationHr,
		TotalAvailableTimeHr:   req.TotalAvailableTimeHr,
		RemainingBufferTimeHr:  req.TotalAvailableTimeHr - route.DurationHr,
		DestinationAttractions: destination,
		StopoverPlans:          stopoverPlans,
		TransportOptions:       options,
		OptimalTransport:       optimal,
	}, nil
}

// planStopovers resolves attractions for each city with bounded parallelism.
// Results are written by index so the output keeps the sampling order.
func (p *ItineraryPlanner) planStopovers(ctx context.Context, cities []string, mood domain.Mood) []domain.StopoverPlan {
	plans := make([]domain.StopoverPlan, len(cities))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			attractions := p.resolver.AttractionsFor(ctx, city, stopoverLookupLimit)
			plans[i] = domain.StopoverPlan{
				CityName:    city,
				Attractions: keepFirst(FilterByMood(attractions, mood), stopoverKeep),
			}
			return nil
		})
	}
	// Lookups degrade to empty lists and never fail the group.
	_ = g.Wait()

	return plans
}

func keepFirst(attractions []domain.Attraction, n int) []domain.Attraction {
	if len(attractions) > n {
		return attractions[:n]
	}
	return attractions
}
