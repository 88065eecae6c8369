package domain

type TransportMode string

const (
	TransportCar   TransportMode = "Car"
	TransportBus   TransportMode = "Bus"
	TransportTrain TransportMode = "Train"
	TransportPlane TransportMode = "Plane"
)

// TransportModes is the canonical mode order. Estimates are always reported
// in this order and it is the tie-breaker when two modes cost the same.
var TransportModes = []TransportMode{TransportCar, TransportBus, TransportTrain, TransportPlane}

// Time and cost of covering a distance with one transport mode.
type TransportOption struct {
	Mode              TransportMode `json:"mode"`
	TimeHr            float64       `json:"timeHr"`
	CostLocalCurrency float64       `json:"costLocalCurrency"`
}
