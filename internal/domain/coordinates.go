package domain

import "math"

const earthRadiusKm = 6371.0

// Immutable WGS84 geographic coordinates (longitude, latitude).
// Every adapter converts provider payloads into this type at the boundary,
// so Lon/Lat are never passed around as a bare pair.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// DistanceKm returns the great-circle (Haversine) distance to other.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dLat := toRadians(other.Lat - c.Lat)
	dLon := toRadians(other.Lon - c.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(c.Lat))*math.Cos(toRadians(other.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
