package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"tourism-itinerary-service/internal/adapters/fake"
	"tourism-itinerary-service/internal/catalog"
	"tourism-itinerary-service/internal/domain"
)

func newTestPlanner(geo *fake.Geocoder, pois *fake.POIProvider, routes *fake.RouteProvider) *ItineraryPlanner {
	resolver := NewAttractionResolver(catalog.MustLoad(), geo, pois, nil, 0)
	return NewItineraryPlanner(geo, routes, resolver, NewStopoverFinder(geo, pois), 3)
}

func agraDelhiRoute() *fake.RouteProvider {
	return &fake.RouteProvider{Summary: domain.RouteSummary{
		DistanceKm: 233,
		DurationHr: 3.5,
		Polyline:   syntheticPolyline(14),
	}}
}

func TestPlanItineraryAgraToDelhi(t *testing.T) {
	geo, pois := routeFixtures()
	p := newTestPlanner(geo, pois, agraDelhiRoute())

	plan, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
		StartLocation:        "Agra",
		EndLocation:          "Delhi",
		TotalAvailableTimeHr: 6.0,
		Mood:                 domain.MoodRelaxed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.RemainingBufferTimeHr != 2.5 {
		t.Fatalf("expected buffer 2.5, got %v", plan.RemainingBufferTimeHr)
	}
	if plan.DistanceKm != 233 || plan.DrivingTimeHr != 3.5 {
		t.Fatalf("unexpected route figures: %v km, %v h", plan.DistanceKm, plan.DrivingTimeHr)
	}

	names := domain.Names(plan.DestinationAttractions)
	if len(names) == 0 || len(names) > 5 {
		t.Fatalf("expected 1..5 destination attractions, got %v", names)
	}
	if names[0] != "Red Fort" {
		t.Fatalf("expected Red Fort first, got %v", names)
	}

	cities := make([]string, 0, len(plan.StopoverPlans))
	for _, s := range plan.StopoverPlans {
		cities = append(cities, s.CityName)
		if len(s.Attractions) > 3 {
			t.Fatalf("stopover %s has %d attractions", s.CityName, len(s.Attractions))
		}
	}
	if !reflect.DeepEqual(cities, []string{"Agra", "Mathura", "Palwal", "Faridabad", "Delhi"}) {
		t.Fatalf("unexpected stopover order %v", cities)
	}

	mathuraPlan := plan.StopoverPlans[1]
	if got := domain.Names(mathuraPlan.Attractions); !reflect.DeepEqual(got, []string{"Kusum Sarovar Garden", "Govardhan Hill"}) {
		t.Fatalf("unexpected Mathura attractions %v", got)
	}
	if len(plan.StopoverPlans[2].Attractions) != 0 {
		t.Fatalf("expected degraded Palwal stopover to be empty, got %v", plan.StopoverPlans[2].Attractions)
	}

	if len(plan.TransportOptions) != 4 {
		t.Fatalf("expected 4 transport options, got %d", len(plan.TransportOptions))
	}
	if plan.OptimalTransport == nil || plan.OptimalTransport.Mode != domain.TransportTrain {
		t.Fatalf("expected Train as optimal transport, got %+v", plan.OptimalTransport)
	}
}

func TestPlanItineraryBufferIsExact(t *testing.T) {
	geo, pois := routeFixtures()

	for _, tt := range []struct{ total, driving float64 }{
		{6, 3.5}, {1, 3.5}, {0, 0.33}, {10.75, 7.12},
	} {
		routes := &fake.RouteProvider{Summary: domain.RouteSummary{DistanceKm: 100, DurationHr: tt.driving}}
		p := newTestPlanner(geo, pois, routes)

		plan, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
			StartLocation: "Agra", EndLocation: "Delhi", TotalAvailableTimeHr: tt.total,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.RemainingBufferTimeHr != tt.total-tt.driving {
			t.Fatalf("buffer = %v, want %v", plan.RemainingBufferTimeHr, tt.total-tt.driving)
		}
		if plan.Mood != domain.MoodNeutral {
			t.Fatalf("expected empty mood to default to neutral, got %q", plan.Mood)
		}
	}
}

func TestPlanItineraryInvalidLocation(t *testing.T) {
	geo, pois := routeFixtures()
	p := newTestPlanner(geo, pois, agraDelhiRoute())

	plan, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
		StartLocation:        "Qwzxcvnotacity",
		EndLocation:          "Delhi",
		TotalAvailableTimeHr: 6,
		Mood:                 domain.MoodRelaxed,
	})

	var perr *domain.PlanningError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlanningError, got %v", err)
	}
	if perr.Kind != domain.InvalidLocation || perr.Location != "Qwzxcvnotacity" {
		t.Fatalf("unexpected planning error %+v", perr)
	}
	if !reflect.DeepEqual(plan, domain.TripPlan{}) {
		t.Fatalf("expected no partial plan, got %+v", plan)
	}
}

func TestPlanItineraryRoutingFailed(t *testing.T) {
	geo, pois := routeFixtures()
	routes := &fake.RouteProvider{Err: fmt.Errorf("%w: status 404: no route", domain.ErrRoutingFailed)}
	p := newTestPlanner(geo, pois, routes)

	_, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
		StartLocation: "Agra", EndLocation: "Delhi", TotalAvailableTimeHr: 6,
	})

	var perr *domain.PlanningError
	if !errors.As(err, &perr) || perr.Kind != domain.RoutingFailed {
		t.Fatalf("expected RoutingFailed, got %v", err)
	}
	if !errors.Is(err, domain.ErrRoutingFailed) {
		t.Fatalf("expected wrapped ErrRoutingFailed, got %v", err)
	}
}

func TestPlanItineraryNoFeasibleTransport(t *testing.T) {
	geo, pois := routeFixtures()
	routes := &fake.RouteProvider{Summary: domain.RouteSummary{DistanceKm: 2400, DurationHr: 40}}
	p := newTestPlanner(geo, pois, routes)

	plan, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
		StartLocation: "Agra", EndLocation: "Delhi", TotalAvailableTimeHr: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.OptimalTransport != nil {
		t.Fatalf("expected no optimal transport, got %+v", plan.OptimalTransport)
	}
	if plan.RemainingBufferTimeHr != -38 {
		t.Fatalf("expected negative buffer -38, got %v", plan.RemainingBufferTimeHr)
	}
	if plan.StopoverPlans == nil || len(plan.StopoverPlans) != 0 {
		t.Fatalf("expected empty stopovers for a route without geometry, got %#v", plan.StopoverPlans)
	}
}

func TestPlanItineraryDegradedLookups(t *testing.T) {
	geo := fake.NewGeocoder([]fake.Place{{Name: "Tinytown", Coords: agra}, {Name: "Smallville", Coords: mathura}})
	p := newTestPlanner(geo, fake.NewPOIProvider(), agraDelhiRoute())

	plan, err := p.PlanItinerary(context.Background(), PlanItineraryRequest{
		StartLocation: "Tinytown", EndLocation: "Smallville", TotalAvailableTimeHr: 6,
	})
	if err != nil {
		t.Fatalf("degraded lookups must not fail the plan: %v", err)
	}
	if len(plan.DestinationAttractions) != 0 || len(plan.StopoverPlans) != 0 {
		t.Fatalf("expected empty sections, got %+v", plan)
	}
}

func TestPlanItineraryValidation(t *testing.T) {
	p := newTestPlanner(fake.NewGeocoder(nil), fake.NewPOIProvider(), agraDelhiRoute())

	for _, req := range []PlanItineraryRequest{
		{StartLocation: "", EndLocation: "Delhi", TotalAvailableTimeHr: 6},
		{StartLocation: "Agra", EndLocation: "Delhi", TotalAvailableTimeHr: -1},
	} {
		if _, err := p.PlanItinerary(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
}

// cancellingRoutes cancels the caller's context once the route is computed.
type cancellingRoutes struct {
	fake.RouteProvider
	cancel context.CancelFunc
}

func (c *cancellingRoutes) Route(ctx context.Context, o, d domain.Coordinates) (domain.RouteSummary, error) {
	r, err := c.RouteProvider.Route(ctx, o, d)
	c.cancel()
	return r, err
}

func TestPlanItineraryCancelledAfterRouting(t *testing.T) {
	geo, pois := routeFixtures()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	routes := &cancellingRoutes{RouteProvider: *agraDelhiRoute(), cancel: cancel}
	resolver := NewAttractionResolver(catalog.MustLoad(), geo, pois, nil, 0)
	p := NewItineraryPlanner(geo, routes, resolver, NewStopoverFinder(geo, pois), 2)

	plan, err := p.PlanItinerary(ctx, PlanItineraryRequest{
		StartLocation: "Agra", EndLocation: "Delhi", TotalAvailableTimeHr: 6,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !reflect.DeepEqual(plan, domain.TripPlan{}) {
		t.Fatalf("expected no partial plan, got %+v", plan)
	}
}
