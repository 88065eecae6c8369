package domain

import "strings"

// Mood is a coarse travel preference used to keyword-filter attractions
// and to scale activity durations.
type Mood string

const (
	MoodRelaxed     Mood = "relaxed"
	MoodAdventurous Mood = "adventurous"
	MoodNeutral     Mood = "neutral"
)

// NormalizeMood trims and lower-cases s, defaulting to neutral. Any other
// value is kept as given; only relaxed and adventurous change durations.
func NormalizeMood(s string) Mood {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return MoodNeutral
	}
	return m
}

// ParseMood normalizes s into a Mood. Empty input means neutral.
// Unknown values are reported with ok=false.
func ParseMood(s string) (Mood, bool) {
	switch Mood(strings.ToLower(strings.TrimSpace(s))) {
	case MoodRelaxed:
		return MoodRelaxed, true
	case MoodAdventurous:
		return MoodAdventurous, true
	case MoodNeutral, "":
		return MoodNeutral, true
	default:
		return MoodNeutral, false
	}
}
