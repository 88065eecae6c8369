package api

import (
	"net/http"
	"tourism-itinerary-service/internal/api/handlers"
	"tourism-itinerary-service/internal/ports"
	"tourism-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see service interfaces; adapters are chosen by the caller.
func NewRouter(
	planner *services.ItineraryPlanner,
	scheduler *services.LocalScheduler,
	resolver *services.AttractionResolver,
	catalog ports.Catalog,
) http.Handler {
	mux := http.NewServeMux()

	itineraries := &handlers.ItineraryHandler{Planner: planner}
	schedules := &handlers.ScheduleHandler{Scheduler: scheduler}
	attractions := &handlers.AttractionHandler{Resolver: resolver, Cities: catalog}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/itineraries", itineraries.Plan)
	mux.HandleFunc("/local-schedules", schedules.Schedule)
	mux.HandleFunc("/cities", attractions.ListCities)
	mux.HandleFunc("/attractions", attractions.Attractions)

	return requestIDMiddleware(loggingMiddleware(mux))
}
