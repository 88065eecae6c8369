package domain

// Driving route between two points as reported by the routing provider.
// A RouteSummary is produced once per planning request and never mutated.
type RouteSummary struct {
	DistanceKm float64       `json:"distanceKm"`
	DurationHr float64       `json:"durationHr"`
	Polyline   []Coordinates `json:"polyline"`
}
