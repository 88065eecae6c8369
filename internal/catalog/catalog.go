// Package catalog holds the static reference tables: curated attractions for
// well-known cities and the local scheduler's place catalog. Tables are
// embedded YAML decoded once at startup and never mutated afterwards.
package catalog

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"tourism-itinerary-service/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type attractionsFile struct {
	Curated map[string][]string `yaml:"curated"`
}

type placeRecord struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Address    string   `yaml:"address"`
	Lat        float64  `yaml:"lat"`
	Lon        float64  `yaml:"lon"`
	Categories []string `yaml:"categories"`
	Duration   int      `yaml:"duration"`
	Cost       float64  `yaml:"cost"`
	Rating     float64  `yaml:"rating"`
}

type cityRecord struct {
	Center struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"center"`
	Places []placeRecord `yaml:"places"`
}

type localFile struct {
	Interests map[string][]string   `yaml:"interests"`
	Cities    map[string]cityRecord `yaml:"cities"`
}

// Static is an immutable in-memory catalog. It is safe for concurrent use.
type Static struct {
	curated   map[string][]string
	interests map[string][]string
	cities    map[string]domain.CityCatalog
}

// Load decodes the embedded tables.
func Load() (*Static, error) {
	var af attractionsFile
	if err := decode("data/attractions.yaml", &af); err != nil {
		return nil, err
	}

	var lf localFile
	if err := decode("data/local.yaml", &lf); err != nil {
		return nil, err
	}

	return New(af.Curated, lf.Interests, lf.Cities)
}

// MustLoad is Load for callers that treat a broken embedded table as a programming error.
func MustLoad() *Static {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func decode(name string, v any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// New builds a catalog from already decoded tables. Keys are normalized and
// places are ordered by id so that iteration order is deterministic.
func New(
	curated map[string][]string,
	interests map[string][]string,
	cities map[string]cityRecord,
) (*Static, error) {
	s := &Static{
		curated:   make(map[string][]string, len(curated)),
		interests: make(map[string][]string, len(interests)),
		cities:    make(map[string]domain.CityCatalog, len(cities)),
	}

	for k, v := range curated {
		s.curated[Key(k)] = append([]string(nil), v...)
	}
	for k, v := range interests {
		s.interests[Key(k)] = append([]string(nil), v...)
	}

	for name, rec := range cities {
		places := make([]domain.CatalogPlace, 0, len(rec.Places))
		seen := make(map[string]struct{}, len(rec.Places))
		for i, p := range rec.Places {
			if strings.TrimSpace(p.ID) == "" {
				return nil, fmt.Errorf("catalog: city %q place #%d: empty id", name, i+1)
			}
			if _, ok := seen[p.ID]; ok {
				return nil, fmt.Errorf("catalog: city %q: duplicate place id %q", name, p.ID)
			}
			seen[p.ID] = struct{}{}

			places = append(places, domain.CatalogPlace{
				ID:                p.ID,
				Name:              p.Name,
				Address:           p.Address,
				Coordinates:       domain.Coordinates{Lon: p.Lon, Lat: p.Lat},
				Categories:        append([]string(nil), p.Categories...),
				DurationMinutes:   p.Duration,
				CostLocalCurrency: p.Cost,
				Rating:            p.Rating,
			})
		}
		sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })

		s.cities[Key(name)] = domain.CityCatalog{
			City:   name,
			Center: domain.Coordinates{Lon: rec.Center.Lon, Lat: rec.Center.Lat},
			Places: places,
		}
	}

	return s, nil
}

// Key normalizes a city or interest name for table lookups: trimmed,
// lower-cased, internal whitespace collapsed to single spaces.
func Key(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func (s *Static) CuratedAttractions(city string) ([]string, bool) {
	names, ok := s.curated[Key(city)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

func (s *Static) CityCatalog(city string) (domain.CityCatalog, bool) {
	c, ok := s.cities[Key(city)]
	if !ok {
		return domain.CityCatalog{}, false
	}
	c.Places = append([]domain.CatalogPlace(nil), c.Places...)
	return c, true
}

func (s *Static) InterestCategories(interest string) []string {
	return append([]string(nil), s.interests[Key(interest)]...)
}

func (s *Static) CuratedCities() []string {
	out := make([]string, 0, len(s.curated))
	for k := range s.curated {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
