package domain

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	agra := Coordinates{Lon: 78.0081, Lat: 27.1767}
	delhi := Coordinates{Lon: 77.2090, Lat: 28.6139}

	got := agra.DistanceKm(delhi)
	if math.Abs(got-177.6) > 1 {
		t.Fatalf("Agra to Delhi = %.1f km, want about 177.6", got)
	}
	if back := delhi.DistanceKm(agra); math.Abs(back-got) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", got, back)
	}
	if d := agra.DistanceKm(agra); d != 0 {
		t.Fatalf("distance to self = %v", d)
	}
}

func TestDistanceKmUsesLonLatOrder(t *testing.T) {
	// One degree of latitude is about 111 km everywhere; one degree of
	// longitude shrinks towards the poles.
	north := Coordinates{Lon: 0, Lat: 60}.DistanceKm(Coordinates{Lon: 0, Lat: 61})
	east := Coordinates{Lon: 0, Lat: 60}.DistanceKm(Coordinates{Lon: 1, Lat: 60})

	if math.Abs(north-111.2) > 0.5 {
		t.Fatalf("one degree north = %.2f km", north)
	}
	if math.Abs(east-55.6) > 0.5 {
		t.Fatalf("one degree east at 60N = %.2f km", east)
	}
}

func TestCoordsToList(t *testing.T) {
	got := Coordinates{Lon: 78.1, Lat: 27.2}.CoordsToList()
	if len(got) != 2 || got[0] != 78.1 || got[1] != 27.2 {
		t.Fatalf("CoordsToList = %v", got)
	}
}
