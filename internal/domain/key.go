package domain

import "strings"

// KeyDelimiter joins the five combination fields into a CombinationKey.
const KeyDelimiter = "|"

// Canonical default combination, used as the last-resort suggestion lookup.
const (
	DefaultSpace      = "small"
	DefaultSunlight   = "full_sun"
	DefaultExperience = "beginner"
	DefaultTime       = "low"
	DefaultPurpose    = "food"
)

// CombinationKey builds the deterministic key for a five-field combination.
// Fields are trimmed and lower-cased before joining, so the same values
// always normalize to the same key regardless of construction path. This is
// the only place keys are built; both resolution and seeding go through it.
func CombinationKey(space, sunlight, experience, time, purpose string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return strings.Join([]string{
		norm(space), norm(sunlight), norm(experience), norm(time), norm(purpose),
	}, KeyDelimiter)
}

// NormalizedKey recomputes the suggestion's key from its discrete fields.
func (s *Suggestion) NormalizedKey() string {
	return CombinationKey(s.Space, s.Sunlight, s.Experience, s.Time, s.Purpose)
}
