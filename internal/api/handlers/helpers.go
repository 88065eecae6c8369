package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.L().Warn("encode failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeBody reads exactly one JSON object with no unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json body", domain.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: body must contain only one JSON object", domain.ErrInvalidInput)
	}
	return nil
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// writeServiceError maps service errors onto HTTP statuses. Planning errors
// are rendered verbatim; anything unexpected is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *domain.PlanningError
	switch {
	case errors.As(err, &perr) && perr.Kind == domain.InvalidLocation:
		writeError(w, r, http.StatusUnprocessableEntity, perr.Error())
	case errors.As(err, &perr) && perr.Kind == domain.RoutingFailed:
		writeError(w, r, http.StatusBadGateway, perr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownCity):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrLookupFailed):
		writeError(w, r, http.StatusBadGateway, "upstream lookup failed")
	default:
		obs.L().Error("request failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func parseMood(s string) (domain.Mood, error) {
	mood, ok := domain.ParseMood(s)
	if !ok {
		return "", fmt.Errorf("%w: mood must be relaxed, adventurous or neutral", domain.ErrInvalidInput)
	}
	return mood, nil
}
