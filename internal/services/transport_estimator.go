package services

import (
	"math"
	"tourism-itinerary-service/internal/domain"
)

type transportRate struct {
	speedKmh  float64
	costPerKm float64
}

var transportRates = map[domain.TransportMode]transportRate{
	domain.TransportCar:   {speedKmh: 60, costPerKm: 6},
	domain.TransportBus:   {speedKmh: 50, costPerKm: 2},
	domain.TransportTrain: {speedKmh: 80, costPerKm: 1.5},
	domain.TransportPlane: {speedKmh: 600, costPerKm: 5},
}

// EstimateTransport returns time and cost for every mode, in canonical mode
// order. Values are rounded to two decimals. Negative distances count as zero.
func EstimateTransport(distanceKm float64) []domain.TransportOption {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}

	out := make([]domain.TransportOption, 0, len(domain.TransportModes))
	for _, mode := range domain.TransportModes {
		r := transportRates[mode]
		out = append(out, domain.TransportOption{
			Mode:              mode,
			TimeHr:            round2(distanceKm / r.speedKmh),
			CostLocalCurrency: round2(distanceKm * r.costPerKm),
		})
	}
	return out
}

// SelectOptimalTransport picks the cheapest option whose time fits within
// remainingTimeHr. Equal costs keep the earlier option, so the canonical mode
// order decides ties. ok is false when no option fits.
func SelectOptimalTransport(
	estimates []domain.TransportOption,
	remainingTimeHr float64,
) (best domain.TransportOption, ok bool) {
	for _, e := range estimates {
		if e.TimeHr > remainingTimeHr {
			continue
		}
		if !ok || e.CostLocalCurrency < best.CostLocalCurrency {
			best = e
			ok = true
		}
	}
	return best, ok
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
