package opentripmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"tourism-itinerary-service/internal/domain"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"
)

// Client implements POIProvider against the OpenTripMap places API.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

var _ ports.POIProvider = (*Client)(nil)

func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("OpenTripMap api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.opentripmap.com/0.1/en"
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type radiusResponse struct {
	Features []struct {
		Properties struct {
			Name  string `json:"name"`
			Rate  rate   `json:"rate"`
			Kinds string `json:"kinds"`
		} `json:"properties"`
	} `json:"features"`
}

// rate accepts both the numeric popularity used by list endpoints and the
// "3h" string form used elsewhere by the API.
type rate float64

func (r *rate) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*r = rate(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimRight(s, "h")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*r = rate(f)
			return nil
		}
	}

	*r = 0
	return nil
}

// RadiusSearch lists named places around q.Center. Results keep the
// provider's order; ranking is the caller's concern.
func (c *Client) RadiusSearch(ctx context.Context, q ports.RadiusQuery) (_ []ports.POI, err error) {
	defer obs.Time(ctx, "otm.RadiusSearch")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/radius", nil)
	if err != nil {
		return nil, fmt.Errorf("create radius request: %w", err)
	}

	params := req.URL.Query()
	params.Set("radius", strconv.Itoa(q.RadiusMeters))
	params.Set("lon", strconv.FormatFloat(q.Center.Lon, 'f', -1, 64))
	params.Set("lat", strconv.FormatFloat(q.Center.Lat, 'f', -1, 64))
	if len(q.Kinds) > 0 {
		params.Set("kinds", strings.Join(q.Kinds, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	params.Set("apikey", c.apiKey)
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("radius search: %w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf(
			"radius search: %w: status %d: %s",
			domain.ErrLookupFailed, resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded radiusResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("radius search: %w: decode response: %w", domain.ErrLookupFailed, err)
	}

	out := make([]ports.POI, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		name := strings.TrimSpace(f.Properties.Name)
		if name == "" {
			continue
		}
		out = append(out, ports.POI{Name: name, Rate: float64(f.Properties.Rate)})
	}

	return out, nil
}
