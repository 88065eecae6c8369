package services

import (
	"context"
	"errors"
	"testing"
	"tourism-itinerary-service/internal/adapters/fake"
	"tourism-itinerary-service/internal/catalog"
	"tourism-itinerary-service/internal/domain"
)

var vizagCentre = domain.Coordinates{Lon: 83.2181, Lat: 17.6869}

func place(id string, duration int, c domain.Coordinates, categories ...string) domain.CatalogPlace {
	return domain.CatalogPlace{
		ID:                id,
		Name:              id,
		Coordinates:       c,
		Categories:        categories,
		DurationMinutes:   duration,
		CostLocalCurrency: 10,
	}
}

func staticInterests(interest string) []string {
	switch interest {
	case "nature":
		return []string{"nature", "photography"}
	case "food":
		return []string{"food", "local_cuisine"}
	default:
		return nil
	}
}

func visitIDs(items []domain.LocalScheduleItem) []string {
	var out []string
	for _, it := range items {
		if it.Visit != nil {
			out = append(out, it.Visit.Place.ID)
		}
	}
	return out
}

func usedMinutes(items []domain.LocalScheduleItem) int {
	total := 0
	for _, it := range items {
		total += it.Minutes()
	}
	return total
}

func TestScheduleGreedyStopScenario(t *testing.T) {
	places := []domain.CatalogPlace{
		place("a", 20, vizagCentre, "nature"),
		place("b", 15, domain.Coordinates{Lon: 83.2300, Lat: 17.7000}, "nature"),
		place("c", 30, vizagCentre, "nature"),
	}

	cands := MatchInterests(places, []string{"nature"}, staticInterests)
	RankCandidates(cands, vizagCentre)
	items, fallback := PackSchedule(cands, 30, domain.MoodNeutral)

	if fallback {
		t.Fatalf("did not expect fallback")
	}
	ids := visitIDs(items)
	if len(ids) != 1 || ids[0] != "b" {
		t.Fatalf("expected only the 15-minute place, got %v", ids)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single visit item, got %d items", len(items))
	}
}

func TestScheduleStopsAtFirstMiss(t *testing.T) {
	far := domain.Coordinates{Lon: 83.3100, Lat: 17.6869}
	places := []domain.CatalogPlace{
		place("near_short", 10, vizagCentre, "nature"),
		place("far_mid", 20, far, "nature"),
		place("near_long", 30, vizagCentre, "nature"),
	}

	cands := MatchInterests(places, []string{"nature"}, staticInterests)
	RankCandidates(cands, vizagCentre)
	items, _ := PackSchedule(cands, 60, domain.MoodNeutral)

	// near_long would still fit, but the scan ends at far_mid.
	ids := visitIDs(items)
	if len(ids) != 1 || ids[0] != "near_short" {
		t.Fatalf("expected greedy stop after near_short, got %v", ids)
	}
}

func TestScheduleAddsTravelBetweenVisits(t *testing.T) {
	next := domain.Coordinates{Lon: 83.2181, Lat: 17.6959}
	places := []domain.CatalogPlace{
		place("first", 10, vizagCentre, "nature"),
		place("second", 15, next, "nature"),
	}

	cands := MatchInterests(places, []string{"nature"}, staticInterests)
	RankCandidates(cands, vizagCentre)
	items, _ := PackSchedule(cands, 60, domain.MoodNeutral)

	if len(items) != 3 {
		t.Fatalf("expected visit, travel, visit; got %d items", len(items))
	}
	if items[0].Kind != domain.ScheduleItemVisit || items[1].Kind != domain.ScheduleItemTravel || items[2].Kind != domain.ScheduleItemVisit {
		t.Fatalf("unexpected item kinds %v %v %v", items[0].Kind, items[1].Kind, items[2].Kind)
	}

	tr := items[1].Travel
	if tr.FromPlace != "first" || tr.ToPlace != "second" {
		t.Fatalf("unexpected travel %+v", tr)
	}
	// About 1 km at 12 minutes per km.
	if tr.TravelTimeMinutes != 12 {
		t.Fatalf("expected 12 travel minutes, got %d", tr.TravelTimeMinutes)
	}
	if got := usedMinutes(items); got != 37 {
		t.Fatalf("expected 37 used minutes, got %d", got)
	}
}

func TestScheduleFallback(t *testing.T) {
	places := []domain.CatalogPlace{
		place("long", 45, vizagCentre, "nature"),
		place("longer", 90, vizagCentre, "nature"),
	}

	cands := MatchInterests(places, []string{"nature"}, staticInterests)
	RankCandidates(cands, vizagCentre)
	items, fallback := PackSchedule(cands, 15, domain.MoodRelaxed)

	if !fallback {
		t.Fatalf("expected fallback")
	}
	if len(items) != 1 || items[0].Visit == nil || items[0].Visit.Place.ID != "long" {
		t.Fatalf("expected exactly the first candidate, got %v", visitIDs(items))
	}
	if items[0].Visit.ActivityMinutes != 54 {
		t.Fatalf("expected relaxed 54 minutes, got %d", items[0].Visit.ActivityMinutes)
	}
}

func TestScheduleEmptyCatalog(t *testing.T) {
	items, fallback := PackSchedule(nil, 60, domain.MoodNeutral)
	if fallback || items == nil || len(items) != 0 {
		t.Fatalf("expected empty schedule, got %v (fallback=%v)", items, fallback)
	}
}

func TestMatchInterests(t *testing.T) {
	places := []domain.CatalogPlace{
		place("park", 20, vizagCentre, "nature", "photography"),
		place("market", 20, vizagCentre, "food"),
		place("museum", 20, vizagCentre, "history"),
	}

	cands := MatchInterests(places, []string{"nature", "unknown"}, staticInterests)
	if len(cands) != 1 || cands[0].Place.ID != "park" || cands[0].Score != 2 {
		t.Fatalf("unexpected candidates %+v", cands)
	}

	all := MatchInterests(places, []string{"unknown"}, staticInterests)
	if len(all) != len(places) {
		t.Fatalf("expected fallback to every place, got %d", len(all))
	}
}

func TestRankCandidatesDeterministicTies(t *testing.T) {
	cands := []Candidate{
		{Place: place("zeta", 20, vizagCentre), Score: 1},
		{Place: place("beta", 20, vizagCentre), Score: 1},
		{Place: place("alpha", 20, vizagCentre), Score: 2},
		{Place: place("gamma", 10, domain.Coordinates{Lon: 83.3, Lat: 17.7})},
	}

	RankCandidates(cands, vizagCentre)

	want := []string{"gamma", "alpha", "beta", "zeta"}
	for i, id := range want {
		if cands[i].Place.ID != id {
			t.Fatalf("position %d = %s, want %s", i, cands[i].Place.ID, id)
		}
	}
}

func TestActivityMinutes(t *testing.T) {
	tests := []struct {
		duration int
		mood     domain.Mood
		want     int
	}{
		{20, domain.MoodNeutral, 20},
		{20, domain.MoodRelaxed, 24},
		{20, domain.MoodAdventurous, 16},
		{25, domain.MoodAdventurous, 20},
		{1, domain.MoodAdventurous, 1},
		{0, domain.MoodNeutral, 1},
	}

	for _, tt := range tests {
		if got := ActivityMinutes(tt.duration, tt.mood); got != tt.want {
			t.Errorf("ActivityMinutes(%d, %s) = %d, want %d", tt.duration, tt.mood, got, tt.want)
		}
	}
}

func TestScheduleLocalTripBudget(t *testing.T) {
	s := NewLocalScheduler(catalog.MustLoad(), nil)

	for _, mood := range []domain.Mood{domain.MoodRelaxed, domain.MoodAdventurous, domain.MoodNeutral} {
		for minutes := 1; minutes <= 240; minutes += 7 {
			sched, err := s.ScheduleLocalTrip(context.Background(), ScheduleRequest{
				City:                 "Visakhapatnam",
				StartingLocation:     "RK Beach",
				TotalDurationMinutes: minutes,
				Mood:                 mood,
				Interests:            []string{"nature", "culture"},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			used := usedMinutes(sched.Items)
			if sched.Summary.Fallback {
				if len(sched.Items) != 1 {
					t.Fatalf("fallback must return one visit, got %d items", len(sched.Items))
				}
				continue
			}
			if used > minutes {
				t.Fatalf("%s/%d: used %d minutes", mood, minutes, used)
			}
			if sched.Summary.UsedMinutes != used {
				t.Fatalf("summary reports %d used minutes, items sum to %d", sched.Summary.UsedMinutes, used)
			}
		}
	}
}

func TestScheduleLocalTripSummary(t *testing.T) {
	s := NewLocalScheduler(catalog.MustLoad(), nil)

	sched, err := s.ScheduleLocalTrip(context.Background(), ScheduleRequest{
		City:                 "visakhapatnam",
		StartingLocation:     "RK Beach",
		TotalDurationMinutes: 60,
		Mood:                 domain.MoodAdventurous,
		Interests:            []string{"nature"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sched.Summary.Title != "Adventurous 60-Minute Visakhapatnam Experience" {
		t.Fatalf("unexpected title %q", sched.Summary.Title)
	}
	if len(sched.Items) == 0 {
		t.Fatalf("expected at least one item")
	}

	cost := 0.0
	for _, it := range sched.Items {
		if it.Visit != nil {
			cost += it.Visit.Place.CostLocalCurrency
		}
	}
	if sched.Summary.EstimatedCost != cost {
		t.Fatalf("estimated cost %v, want %v", sched.Summary.EstimatedCost, cost)
	}

	last := sched.Summary.Tips[len(sched.Summary.Tips)-1]
	if last != "Be prepared for some physical activity" {
		t.Fatalf("unexpected mood tip %q", last)
	}
}

func TestStartingPoint(t *testing.T) {
	yarada := domain.Coordinates{Lon: 83.2500, Lat: 17.6500}
	geo := fake.NewGeocoder([]fake.Place{{Name: "Yarada Road, Visakhapatnam", Coords: yarada}})
	cat := catalog.MustLoad()
	city, _ := cat.CityCatalog("Visakhapatnam")
	s := NewLocalScheduler(cat, geo)

	got := s.startingPoint(context.Background(), ScheduleRequest{City: "Visakhapatnam", StartingLocation: "Yarada Road"}, city)
	if got != yarada {
		t.Fatalf("expected geocoded start %+v, got %+v", yarada, got)
	}

	got = s.startingPoint(context.Background(), ScheduleRequest{City: "Visakhapatnam", StartingLocation: "Somewhere Else"}, city)
	if got != vizagCentre {
		t.Fatalf("expected city centre fallback, got %+v", got)
	}
	if geo.Calls() != 2 {
		t.Fatalf("expected two geocode calls, got %d", geo.Calls())
	}

	got = NewLocalScheduler(cat, nil).startingPoint(context.Background(), ScheduleRequest{StartingLocation: "Yarada Road"}, city)
	if got != vizagCentre {
		t.Fatalf("expected city centre without a geocoder, got %+v", got)
	}
}

func TestScheduleLocalTripErrors(t *testing.T) {
	s := NewLocalScheduler(catalog.MustLoad(), nil)

	_, err := s.ScheduleLocalTrip(context.Background(), ScheduleRequest{City: "Atlantis", TotalDurationMinutes: 30})
	if !errors.Is(err, domain.ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}

	_, err = s.ScheduleLocalTrip(context.Background(), ScheduleRequest{City: "Visakhapatnam"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestScheduleLocalTripFreeFormMoodIsUnscaled(t *testing.T) {
	s := NewLocalScheduler(catalog.MustLoad(), nil)

	sched, err := s.ScheduleLocalTrip(context.Background(), ScheduleRequest{
		City:                 "Visakhapatnam",
		TotalDurationMinutes: 60,
		Mood:                 domain.Mood("Social"),
		Interests:            []string{"nature"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sched.Summary.Mood != "social" {
		t.Fatalf("mood = %q, want social", sched.Summary.Mood)
	}
	for _, it := range sched.Items {
		if it.Visit != nil && it.Visit.ActivityMinutes != it.Visit.Place.DurationMinutes {
			t.Fatalf("%s scaled to %d minutes", it.Visit.Place.ID, it.Visit.ActivityMinutes)
		}
	}
}
