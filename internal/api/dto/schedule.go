package dto

type LocalScheduleRequest struct {
	City                 string   `json:"city"`
	StartingLocation     string   `json:"startingLocation"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	Mood                 string   `json:"mood"`
	Interests            []string `json:"interests"`
}
