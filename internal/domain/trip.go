package domain

// Attractions recommended for one intermediate city on the route.
type StopoverPlan struct {
	CityName    string       `json:"cityName"`
	Attractions []Attraction `json:"attractions"`
}

// TripPlan is the output of the route itinerary planner.
//
// RemainingBufferTimeHr is always TotalAvailableTimeHr - DrivingTimeHr and is
// allowed to be negative: a negative buffer reports an infeasible same-day trip
// rather than rejecting the request. OptimalTransport is nil when no mode fits
// the available time.
type TripPlan struct {
	StartLocation          string            `json:"startLocation"`
	EndLocation            string            `json:"endLocation"`
	Mood                   Mood              `json:"mood"`
	DistanceKm             float64           `json:"distanceKm"`
	DrivingTimeHr          float64           `json:"drivingTimeHr"`
	TotalAvailableTimeHr   float64           `json:"totalAvailableTimeHr"`
	RemainingBufferTimeHr  float64           `json:"remainingBufferTimeHr"`
	DestinationAttractions []Attraction      `json:"destinationAttractions"`
	StopoverPlans          []StopoverPlan    `json:"stopoverPlans"`
	TransportOptions       []TransportOption `json:"transportOptions"`
	OptimalTransport       *TransportOption  `json:"optimalTransport"`
}
