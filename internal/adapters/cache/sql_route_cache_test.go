package cache

import (
	"testing"
	"tourism-itinerary-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineRoundTripKeepsLonLat(t *testing.T) {
	points := []domain.Coordinates{
		{Lon: 78.0081, Lat: 27.1767},
		{Lon: 77.6737, Lat: 27.4924},
		{Lon: 77.2090, Lat: 28.6139},
	}

	encoded := encodePolyline(points)
	require.NotEmpty(t, encoded)

	got, err := decodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, got, len(points))
	for i := range points {
		assert.InDelta(t, points[i].Lon, got[i].Lon, 1e-5, "point %d lon", i)
		assert.InDelta(t, points[i].Lat, got[i].Lat, 1e-5, "point %d lat", i)
	}
}

func TestPolylineKnownEncoding(t *testing.T) {
	// Reference example from the polyline format documentation, (lat, lon) pairs.
	got, err := decodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 38.5, got[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, got[0].Lon, 1e-5)
	assert.InDelta(t, -126.453, got[2].Lon, 1e-5)
}

func TestPolylineEmptyAndInvalid(t *testing.T) {
	got, err := decodePolyline("")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, "", encodePolyline(nil))

	_, err = decodePolyline("_p~iF~ps|U_")
	assert.Error(t, err)
}

func TestUniqueKeys(t *testing.T) {
	got := uniqueKeys([]string{"agra", " agra ", "", "delhi", "agra"})
	assert.Equal(t, []string{"agra", "delhi"}, got)
}
