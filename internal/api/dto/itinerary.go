package dto

type ItineraryRequest struct {
	StartLocation        string   `json:"startLocation"`
	EndLocation          string   `json:"endLocation"`
	TotalAvailableTimeHr *float64 `json:"totalAvailableTimeHr"`
	Mood                 string   `json:"mood"`
}
