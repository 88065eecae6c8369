package ports

import "tourism-itinerary-service/internal/domain"

// Read-only access to the static reference tables.
type Catalog interface {
	// Curated attraction names for a well-known city, matched case-insensitively.
	CuratedAttractions(city string) ([]string, bool)
	// Catalog places used by the local scheduler, sorted by id.
	CityCatalog(city string) (domain.CityCatalog, bool)
	// Categories implied by an interest keyword.
	InterestCategories(interest string) []string
	CuratedCities() []string
}
