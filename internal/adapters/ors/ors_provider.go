package ors

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"tourism-itinerary-service/internal/ports"
)

// ORSProvider implements Geocoder and RouteProvider using OpenRouteService.
//
// It coordinates:
//   - Place name normalization
//   - Optional persistent geocode and route caching
//   - External API calls, with retries only when MaxAttempts > 1
//
// The provider is safe for concurrent use.
type ORSProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	maxAttempts  int
	geocodeCache ports.GeocodeCache
	routeCache   ports.RouteCache
}

type Options struct {
	APIKey  string
	BaseURL string
	Profile string
	// Per-request timeout applied to the HTTP client.
	Timeout time.Duration
	// 1 disables retries.
	MaxAttempts int
	HTTPClient  *http.Client
}

var (
	_ ports.Geocoder      = (*ORSProvider)(nil)
	_ ports.RouteProvider = (*ORSProvider)(nil)
)

// NewORSProvider builds a provider. Either cache may be nil.
func NewORSProvider(
	opts Options,
	geocodeCache ports.GeocodeCache,
	routeCache ports.RouteCache,
) (*ORSProvider, error) {
	if opts.APIKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.openrouteservice.org"
	}
	if opts.Profile == "" {
		opts.Profile = "driving-car"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	session := opts.HTTPClient
	if session == nil {
		session = &http.Client{Timeout: opts.Timeout}
	}

	return &ORSProvider{
		session:      session,
		apiKey:       opts.APIKey,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		profile:      opts.Profile,
		maxAttempts:  opts.MaxAttempts,
		geocodeCache: geocodeCache,
		routeCache:   routeCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace and case.
func (o *ORSProvider) normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
