package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"tourism-itinerary-service/internal/api/dto"
	"tourism-itinerary-service/internal/domain"
)

const (
	defaultAttractionLimit = 5
	maxAttractionLimit     = 20
)

type AttractionResolver interface {
	Resolve(ctx context.Context, place string, limit int) ([]domain.Attraction, error)
}

type CityLister interface {
	CuratedCities() []string
}

// AttractionHandler exposes the curated table and the POI resolver directly.
type AttractionHandler struct {
	Resolver AttractionResolver
	Cities   CityLister
}

func (h *AttractionHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ListCitiesResponse{Cities: h.Cities.CuratedCities()})
}

func (h *AttractionHandler) Attractions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	place := strings.TrimSpace(r.URL.Query().Get("place"))
	if place == "" {
		writeServiceError(w, r, fmt.Errorf("%w: place is required", domain.ErrInvalidInput))
		return
	}

	limit := defaultAttractionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAttractionLimit {
			writeServiceError(w, r, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, maxAttractionLimit))
			return
		}
		limit = n
	}

	attractions, err := h.Resolver.Resolve(r.Context(), place, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AttractionsResponse{Place: place, Attractions: domain.Names(attractions)})
}
