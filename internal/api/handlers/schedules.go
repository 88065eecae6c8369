package handlers

import (
	"context"
	"net/http"
	"tourism-itinerary-service/internal/api/dto"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/services"
)

type LocalScheduler interface {
	ScheduleLocalTrip(ctx context.Context, req services.ScheduleRequest) (domain.LocalSchedule, error)
}

type ScheduleHandler struct {
	Scheduler LocalScheduler
}

func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LocalScheduleRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	sched, err := h.Scheduler.ScheduleLocalTrip(r.Context(), services.ScheduleRequest{
		City:                 req.City,
		StartingLocation:     req.StartingLocation,
		TotalDurationMinutes: req.TotalDurationMinutes,
		Mood:                 domain.NormalizeMood(req.Mood),
		Interests:            req.Interests,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, sched)
}
