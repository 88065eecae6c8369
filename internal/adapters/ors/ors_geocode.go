package ors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"

	"go.uber.org/zap"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Name     string `json:"name"`
			Locality string `json:"locality"`
			County   string `json:"county"`
			Region   string `json:"region"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves a free-text place name using /geocode/search.
// A cached coordinate is returned without calling the provider.
func (o *ORSProvider) Geocode(ctx context.Context, placeName string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(placeName)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: place name must be non-empty", domain.ErrInvalidInput)
	}

	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			obs.L().Warn("geocode cache read failed", zap.String("place", norm), zap.Error(err))
		} else if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	endpoint := o.baseURL + "/geocode/search"
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, lookupError(fmt.Sprintf("geocode %q", placeName), err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, lookupError(fmt.Sprintf("geocode %q: decode response", placeName), err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", placeName, domain.ErrNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, lookupError(
			fmt.Sprintf("geocode %q", placeName),
			errors.New("invalid coordinate format"),
		)
	}

	// GeoJSON positions are [lon, lat].
	c := domain.Coordinates{Lon: coords[0], Lat: coords[1]}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: c}); err != nil {
			obs.L().Warn("geocode cache write failed", zap.String("place", norm), zap.Error(err))
		}
	}

	return c, nil
}

// ReverseGeocode resolves coordinates to the most specific available name
// using /geocode/reverse: locality, then county, region and finally name.
func (o *ORSProvider) ReverseGeocode(ctx context.Context, coord domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "ors.ReverseGeocode")(&err)

	endpoint := o.baseURL + "/geocode/reverse"
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("point.lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
		q.Set("point.lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", lookupError("reverse geocode", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", lookupError("reverse geocode: decode response", err)
	}

	if len(decoded.Features) == 0 {
		return "", fmt.Errorf("reverse geocode (%f,%f): %w", coord.Lon, coord.Lat, domain.ErrNotFound)
	}

	p := decoded.Features[0].Properties
	for _, name := range []string{p.Locality, p.County, p.Region, p.Name} {
		if name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("reverse geocode (%f,%f): %w", coord.Lon, coord.Lat, domain.ErrNotFound)
}
