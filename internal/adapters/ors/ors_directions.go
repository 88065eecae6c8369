package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// Route requests a driving route from /v2/directions/{profile} and decodes the
// encoded geometry into an ordered coordinate sequence.
func (o *ORSProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.RouteSummary, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	if o.routeCache != nil {
		r, ok, err := o.routeCache.Get(ctx, origin, destination)
		if err != nil {
			obs.L().Warn("route cache read failed", zap.Error(err))
		} else if ok {
			return r, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	})
	if err != nil {
		return domain.RouteSummary{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.RouteSummary{}, routingError(err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return domain.RouteSummary{}, routingError(fmt.Errorf("decode directions response: %w", err))
	}

	if len(dr.Routes) == 0 {
		return domain.RouteSummary{}, routingError(errors.New("directions response contained no routes"))
	}
	route := dr.Routes[0]

	points, err := decodeGeometry(route.Geometry)
	if err != nil {
		return domain.RouteSummary{}, routingError(err)
	}

	summary := domain.RouteSummary{
		DistanceKm: round2(route.Summary.Distance / 1000),
		DurationHr: round2(route.Summary.Duration / 3600),
		Polyline:   points,
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, origin, destination, summary); err != nil {
			obs.L().Warn("route cache write failed", zap.Error(err))
		}
	}

	return summary, nil
}

// decodeGeometry decodes a precision-5 encoded polyline. Encoded pairs are
// (lat, lon); they are converted to Coordinates here and nowhere else.
func decodeGeometry(encoded string) ([]domain.Coordinates, error) {
	if encoded == "" {
		return []domain.Coordinates{}, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode route geometry: %w", err)
	}

	out := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		out = append(out, domain.Coordinates{Lon: c[1], Lat: c[0]})
	}
	return out, nil
}

func routingError(err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		return fmt.Errorf("%w: %s", domain.ErrRoutingFailed, he.Body)
	}
	return fmt.Errorf("%w: %w", domain.ErrRoutingFailed, err)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
