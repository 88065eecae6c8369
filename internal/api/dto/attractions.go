package dto

type ListCitiesResponse struct {
	Cities []string `json:"cities"`
}

type AttractionsResponse struct {
	Place       string   `json:"place"`
	Attractions []string `json:"attractions"`
}
