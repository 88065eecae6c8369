package domain

type ScheduleItemKind string

const (
	ScheduleItemTravel ScheduleItemKind = "travel"
	ScheduleItemVisit  ScheduleItemKind = "visit"
)

// Movement between two consecutive visits.
type TravelSegment struct {
	FromPlace         string  `json:"fromPlace"`
	ToPlace           string  `json:"toPlace"`
	TravelTimeMinutes int     `json:"travelTimeMinutes"`
	DistanceKm        float64 `json:"distanceKm"`
}

// Time spent at a catalog place, already scaled for mood.
type VisitSegment struct {
	Place           CatalogPlace `json:"place"`
	ActivityMinutes int          `json:"activityMinutes"`
}

// LocalScheduleItem is either a travel or a visit segment; exactly one of
// Travel and Visit is set, as indicated by Kind.
type LocalScheduleItem struct {
	Kind   ScheduleItemKind `json:"kind"`
	Travel *TravelSegment   `json:"travel,omitempty"`
	Visit  *VisitSegment    `json:"visit,omitempty"`
}

// Minutes returns the time the item consumes from the schedule budget.
func (i LocalScheduleItem) Minutes() int {
	switch {
	case i.Travel != nil:
		return i.Travel.TravelTimeMinutes
	case i.Visit != nil:
		return i.Visit.ActivityMinutes
	default:
		return 0
	}
}

// LocalSchedule is the full result of a local scheduling request.
type LocalSchedule struct {
	Summary LocalScheduleSummary `json:"summary"`
	Items   []LocalScheduleItem  `json:"items"`
}

type LocalScheduleSummary struct {
	Title                string   `json:"title"`
	City                 string   `json:"city"`
	StartingLocation     string   `json:"startingLocation"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	UsedMinutes          int      `json:"usedMinutes"`
	EstimatedCost        float64  `json:"estimatedCost"`
	Mood                 string   `json:"mood"`
	Interests            []string `json:"interests"`
	Fallback             bool     `json:"fallback"`
	Tips                 []string `json:"tips"`
}
