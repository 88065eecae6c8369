package app

import (
	"tourism-itinerary-service/internal/adapters/fake"
	"tourism-itinerary-service/internal/catalog"
	"tourism-itinerary-service/internal/config"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/ports"
)

const (
	offlineSpeedKmh    = 55
	offlineDetour      = 1.3
	offlinePolyline    = 60
	offlineNearCityKm  = 40
	offlineConcurrency = 2
)

// gazetteer backs offline geocoding. Coordinates are city centres.
var gazetteer = []fake.Place{
	{Name: "Agra", Coords: domain.Coordinates{Lon: 78.0081, Lat: 27.1767}},
	{Name: "Mathura", Coords: domain.Coordinates{Lon: 77.6737, Lat: 27.4924}},
	{Name: "Faridabad", Coords: domain.Coordinates{Lon: 77.3178, Lat: 28.4089}},
	{Name: "Delhi", Coords: domain.Coordinates{Lon: 77.2090, Lat: 28.6139}},
	{Name: "Jaipur", Coords: domain.Coordinates{Lon: 75.7873, Lat: 26.9124}},
	{Name: "Mumbai", Coords: domain.Coordinates{Lon: 72.8777, Lat: 19.0760}},
	{Name: "Pune", Coords: domain.Coordinates{Lon: 73.8567, Lat: 18.5204}},
	{Name: "Goa", Coords: domain.Coordinates{Lon: 74.1240, Lat: 15.2993}},
	{Name: "Bangalore", Coords: domain.Coordinates{Lon: 77.5946, Lat: 12.9716}},
	{Name: "Chennai", Coords: domain.Coordinates{Lon: 80.2707, Lat: 13.0827}},
	{Name: "Hyderabad", Coords: domain.Coordinates{Lon: 78.4867, Lat: 17.3850}},
	{Name: "Kolkata", Coords: domain.Coordinates{Lon: 88.3639, Lat: 22.5726}},
	{Name: "Visakhapatnam", Coords: domain.Coordinates{Lon: 83.2185, Lat: 17.6868}},
	{Name: "RK Beach, Visakhapatnam", Coords: domain.Coordinates{Lon: 83.2847, Lat: 17.7231}},
}

// BuildOffline wires the services against in-memory providers: a small
// gazetteer, straight-line routes and an empty POI index. Curated cities still
// return their attractions; everything else degrades to empty sections.
func BuildOffline(cfg *config.Config) (*Services, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	geo := fake.NewGeocoder(gazetteer).WithNearestReverse(offlineNearCityKm)
	routes := &fake.LineRouteProvider{SpeedKmh: offlineSpeedKmh, Detour: offlineDetour, Points: offlinePolyline}

	if cfg == nil {
		cfg = &config.Config{StopoverConcurrency: offlineConcurrency}
	}

	s := &Services{}
	var noCache ports.AttractionCache
	s.wire(cat, geo, routes, fake.NewPOIProvider(), noCache, cfg)
	return s, nil
}
