package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	walkingMinutesPerKm   = 12
	relaxedActivityFactor = 1.2
	briskActivityFactor   = 0.8

	// Free-form scheduler mood with its own tip and no duration scaling.
	moodCultural domain.Mood = "cultural"
)

// Candidate is a catalog place that survived interest filtering, scored by
// the number of interest categories it matches.
type Candidate struct {
	Place domain.CatalogPlace
	Score int
}

// MatchInterests keeps the places whose categories intersect those implied by
// interests. Unknown interests imply no categories. When nothing matches, every
// place is returned with a zero score.
func MatchInterests(places []domain.CatalogPlace, interests []string, categoriesOf func(string) []string) []Candidate {
	var wanted []string
	for _, in := range interests {
		wanted = append(wanted, categoriesOf(in)...)
	}

	out := make([]Candidate, 0, len(places))
	for _, p := range places {
		score := 0
		for _, c := range wanted {
			if p.HasCategory(c) {
				score++
			}
		}
		if score > 0 {
			out = append(out, Candidate{Place: p, Score: score})
		}
	}

	if len(out) == 0 {
		for _, p := range places {
			out = append(out, Candidate{Place: p})
		}
	}
	return out
}

// RankCandidates orders candidates shortest first, then closest to start,
// then by higher score, then by id.
func RankCandidates(cands []Candidate, start domain.Coordinates) {
	dist := make(map[string]float64, len(cands))
	for _, c := range cands {
		dist[c.Place.ID] = start.DistanceKm(c.Place.Coordinates)
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Place.DurationMinutes != b.Place.DurationMinutes {
			return a.Place.DurationMinutes < b.Place.DurationMinutes
		}
		if da, db := dist[a.Place.ID], dist[b.Place.ID]; da != db {
			return da < db
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Place.ID < b.Place.ID
	})
}

// ActivityMinutes scales a visit duration for mood, never below one minute.
func ActivityMinutes(durationMinutes int, mood domain.Mood) int {
	d := float64(durationMinutes)
	switch mood {
	case domain.MoodRelaxed:
		d *= relaxedActivityFactor
	case domain.MoodAdventurous:
		d *= briskActivityFactor
	}
	return max(1, int(math.Round(d)))
}

// WalkingMinutes converts a distance into walking time.
func WalkingMinutes(km float64) int {
	return int(math.Round(km * walkingMinutesPerKm))
}

// PackSchedule greedily accepts ranked candidates until the first one that
// does not fit the remaining budget. The first visit carries no travel. If
// nothing fits, the first candidate is included anyway and fallback is true.
func PackSchedule(ranked []Candidate, totalMinutes int, mood domain.Mood) (items []domain.LocalScheduleItem, fallback bool) {
	items = []domain.LocalScheduleItem{}
	remaining := totalMinutes

	var prev *domain.CatalogPlace
	for i := range ranked {
		place := ranked[i].Place
		activity := ActivityMinutes(place.DurationMinutes, mood)

		travel, km := 0, 0.0
		if prev != nil {
			km = prev.Coordinates.DistanceKm(place.Coordinates)
			travel = WalkingMinutes(km)
		}

		if activity+travel > remaining {
			break
		}

		if prev != nil && travel > 0 {
			items = append(items, domain.LocalScheduleItem{
				Kind: domain.ScheduleItemTravel,
				Travel: &domain.TravelSegment{
					FromPlace:         prev.Name,
					ToPlace:           place.Name,
					TravelTimeMinutes: travel,
					DistanceKm:        round2(km),
				},
			})
		}
		items = append(items, domain.LocalScheduleItem{
			Kind:  domain.ScheduleItemVisit,
			Visit: &domain.VisitSegment{Place: place, ActivityMinutes: activity},
		})

		remaining -= activity + travel
		prev = &ranked[i].Place
	}

	if len(items) == 0 && len(ranked) > 0 {
		place := ranked[0].Place
		items = append(items, domain.LocalScheduleItem{
			Kind:  domain.ScheduleItemVisit,
			Visit: &domain.VisitSegment{Place: place, ActivityMinutes: ActivityMinutes(place.DurationMinutes, mood)},
		})
		return items, true
	}
	return items, false
}

// LocalScheduler packs catalog places of one city into a fixed time window.
type LocalScheduler struct {
	catalog  ports.Catalog
	geocoder ports.Geocoder
}

// NewLocalScheduler builds a scheduler. geocoder may be nil, in which case
// the city centre is always used as the starting point.
func NewLocalScheduler(catalog ports.Catalog, geocoder ports.Geocoder) *LocalScheduler {
	return &LocalScheduler{catalog: catalog, geocoder: geocoder}
}

type ScheduleRequest struct {
	City                 string
	StartingLocation     string
	TotalDurationMinutes int
	Mood                 domain.Mood
	Interests            []string
}

func (r ScheduleRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("%w: city is required", domain.ErrInvalidInput)
	}
	if r.TotalDurationMinutes <= 0 {
		return fmt.Errorf("%w: totalDurationMinutes must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func (s *LocalScheduler) ScheduleLocalTrip(ctx context.Context, req ScheduleRequest) (sched domain.LocalSchedule, err error) {
	defer obs.Time(ctx, "ScheduleLocalTrip")(&err)

	if err := req.Validate(); err != nil {
		return domain.LocalSchedule{}, err
	}
	req.Mood = domain.NormalizeMood(string(req.Mood))

	city, ok := s.catalog.CityCatalog(req.City)
	if !ok {
		return domain.LocalSchedule{}, fmt.Errorf("schedule %q: %w", req.City, domain.ErrUnknownCity)
	}

	start := s.startingPoint(ctx, req, city)

	cands := MatchInterests(city.Places, req.Interests, s.catalog.InterestCategories)
	RankCandidates(cands, start)
	items, fallback := PackSchedule(cands, req.TotalDurationMinutes, req.Mood)

	return domain.LocalSchedule{
		Summary: summarize(req, items, fallback),
		Items:   items,
	}, nil
}

// startingPoint geocodes the starting location within the city and falls
// back to the city centre.
func (s *LocalScheduler) startingPoint(ctx context.Context, req ScheduleRequest, city domain.CityCatalog) domain.Coordinates {
	if s.geocoder == nil || strings.TrimSpace(req.StartingLocation) == "" {
		return city.Center
	}

	c, err := s.geocoder.Geocode(ctx, req.StartingLocation+", "+req.City)
	if err != nil {
		obs.L().Info("starting location not resolved, using city centre",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("starting_location", req.StartingLocation),
			zap.Error(err),
		)
		return city.Center
	}
	return c
}

func summarize(req ScheduleRequest, items []domain.LocalScheduleItem, fallback bool) domain.LocalScheduleSummary {
	used, cost := 0, 0.0
	for _, it := range items {
		used += it.Minutes()
		if it.Visit != nil {
			cost += it.Visit.Place.CostLocalCurrency
		}
	}

	title := cases.Title(language.English)
	interests := append([]string{}, req.Interests...)

	tips := []string{
		"Start your journey from " + req.StartingLocation,
		fmt.Sprintf("Total estimated time: %d minutes", used),
		"Allow extra time for photos and exploration",
		"Wear comfortable walking shoes",
	}
	if len(interests) > 0 {
		tips = append(tips, "Interests covered: "+strings.Join(interests, ", "))
	}
	switch req.Mood {
	case domain.MoodRelaxed:
		tips = append(tips, "Take your time to enjoy each location")
	case domain.MoodAdventurous:
		tips = append(tips, "Be prepared for some physical activity")
	case moodCultural:
		tips = append(tips, "Learn about the local history and culture")
	}

	return domain.LocalScheduleSummary{
		Title: fmt.Sprintf("%s %d-Minute %s Experience",
			title.String(string(req.Mood)), req.TotalDurationMinutes, title.String(req.City)),
		City:                 req.City,
		StartingLocation:     req.StartingLocation,
		TotalDurationMinutes: req.TotalDurationMinutes,
		UsedMinutes:          used,
		EstimatedCost:        round2(cost),
		Mood:                 string(req.Mood),
		Interests:            interests,
		Fallback:             fallback,
		Tips:                 tips,
	}
}
