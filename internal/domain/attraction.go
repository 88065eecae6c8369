package domain

// Attraction is a bare point of interest name as returned by the POI resolver.
type Attraction struct {
	Name string `json:"name"`
}

// AttractionsFromNames wraps names into Attraction values, preserving order.
func AttractionsFromNames(names []string) []Attraction {
	out := make([]Attraction, 0, len(names))
	for _, n := range names {
		out = append(out, Attraction{Name: n})
	}
	return out
}

// Names returns the attraction names in order.
func Names(attractions []Attraction) []string {
	out := make([]string, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, a.Name)
	}
	return out
}
