package domain

// CatalogPlace is a richly attributed point of interest used by the local
// scheduler. Catalog data is static and read-only.
type CatalogPlace struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Coordinates       Coordinates `json:"coordinates"`
	Categories        []string    `json:"categories"`
	DurationMinutes   int         `json:"durationMinutes"`
	CostLocalCurrency float64     `json:"costLocalCurrency"`
	Rating            float64     `json:"rating"`
}

// HasCategory reports whether the place is tagged with category.
func (p CatalogPlace) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CityCatalog groups the catalog places of one city together with the
// coordinate used when a starting location cannot be resolved.
type CityCatalog struct {
	City   string
	Center Coordinates
	Places []CatalogPlace
}
