package services

import (
	"strings"
	"tourism-itinerary-service/internal/domain"
)

var moodKeywords = map[domain.Mood][]string{
	domain.MoodRelaxed:     {"beach", "garden", "valley", "park", "lake", "hill"},
	domain.MoodAdventurous: {"fort", "museum", "cave", "trail", "temple", "city palace"},
}

// FilterByMood keeps the attractions whose name contains one of the mood's
// keywords, preserving order.
//
// This is a keyword heuristic, not a semantic classifier. Neutral (or unknown)
// moods, and lists where no entry matches, are returned unchanged so that a
// filter never empties a non-empty list.
func FilterByMood(attractions []domain.Attraction, mood domain.Mood) []domain.Attraction {
	out := make([]domain.Attraction, 0, len(attractions))

	keywords, ok := moodKeywords[mood]
	if !ok {
		return append(out, attractions...)
	}

	for _, a := range attractions {
		name := strings.ToLower(a.Name)
		for _, k := range keywords {
			if strings.Contains(name, k) {
				out = append(out, a)
				break
			}
		}
	}

	if len(out) == 0 {
		return append(out, attractions...)
	}
	return out
}
