package handlers

import (
	"context"
	"fmt"
	"net/http"
	"tourism-itinerary-service/internal/api/dto"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/services"
)

type ItineraryPlanner interface {
	PlanItinerary(ctx context.Context, req services.PlanItineraryRequest) (domain.TripPlan, error)
}

type ItineraryHandler struct {
	Planner ItineraryPlanner
}

// Plan serves POST /itineraries and renders the TripPlan as-is.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ItineraryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.TotalAvailableTimeHr == nil {
		writeServiceError(w, r, fmt.Errorf("%w: totalAvailableTimeHr is required", domain.ErrInvalidInput))
		return
	}
	mood, err := parseMood(req.Mood)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	plan, err := h.Planner.PlanItinerary(r.Context(), services.PlanItineraryRequest{
		StartLocation:        req.StartLocation,
		EndLocation:          req.EndLocation,
		TotalAvailableTimeHr: *req.TotalAvailableTimeHr,
		Mood:                 mood,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, plan)
}
