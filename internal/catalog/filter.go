// Keyword filter engine.
//
// Filter selects a base set by keyword predicate over the full catalog,
// narrows it with any present preference fields, sorts ascending by growth
// duration (stable, so ties keep catalog order), and caps the result count.
package catalog

import (
	"sort"
	"strings"
)

// Recognized filter keywords. An unrecognized keyword is not an error: it
// falls through to the default predicate, the union of quick-growing and
// salad-suitable records.
const (
	KeywordQuickGrowing     = "quick_growing"
	KeywordSaladSuitable    = "salad_suitable"
	KeywordSmoothieSuitable = "smoothie_suitable"
	KeywordSmallSpace       = "small_space"
	KeywordMediumSpace      = "medium_space"
	KeywordLargeSpace       = "large_space"
	KeywordFullSun          = "full_sun"
	KeywordPartialShade     = "partial_shade"
	KeywordSlowGrowing      = "slow_growing"
	KeywordIndoor           = "indoor"
	KeywordOutdoor          = "outdoor"
	KeywordHerbs            = "herbs"
	KeywordVegetables       = "vegetables"
	KeywordFruits           = "fruits"
	KeywordSpecific         = "specific" // no keyword predicate at all
)

// slowGrowingDays is the exclusive lower bound for the slow_growing keyword.
const slowGrowingDays = 90

// Preferences are optional conjunctive narrowing filters applied after the
// keyword predicate. Zero values mean "not set".
type Preferences struct {
	// Space filters by space requirement, case-insensitively.
	Space string `json:"space,omitempty"`
	// Sunlight filters by sunlight requirement; either vocabulary is accepted.
	Sunlight string `json:"sunlight,omitempty"`
	// MaxGrowthDays keeps records whose growth duration is <= the bound.
	MaxGrowthDays int `json:"max_growth_days,omitempty"`
	// IndoorOnly, when non-nil, requires the indoor flag to match exactly.
	IndoorOnly *bool `json:"indoor_only,omitempty"`
}

// IsZero reports whether no preference field is set.
func (p Preferences) IsZero() bool {
	return p.Space == "" && p.Sunlight == "" && p.MaxGrowthDays == 0 && p.IndoorOnly == nil
}

// Filter returns the records matching keyword and prefs, sorted ascending by
// growth duration and truncated to the configured cap. For a fixed catalog
// and fixed inputs the output is deterministic.
func (c *Catalog) Filter(keyword string, prefs Preferences) []Plant {
	pred := keywordPredicate(keyword)

	out := make([]Plant, 0, len(c.plants))
	for _, p := range c.plants {
		if !pred(p) {
			continue
		}
		if !prefsMatch(p, prefs) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GrowthDays < out[j].GrowthDays
	})

	if len(out) > c.cfg.filterCap {
		out = out[:c.cfg.filterCap]
	}
	return out
}

// keywordPredicate maps a keyword onto its record predicate.
func keywordPredicate(keyword string) func(Plant) bool {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case KeywordQuickGrowing:
		return func(p Plant) bool { return p.QuickGrowing }
	case KeywordSaladSuitable:
		return func(p Plant) bool { return p.SaladSuitable }
	case KeywordSmoothieSuitable:
		return func(p Plant) bool { return p.SmoothieSuitable }
	case KeywordSmallSpace:
		return func(p Plant) bool { return p.Space == SpaceSmall }
	case KeywordMediumSpace:
		return func(p Plant) bool { return p.Space == SpaceMedium }
	case KeywordLargeSpace:
		return func(p Plant) bool { return p.Space == SpaceLarge }
	case KeywordFullSun:
		return func(p Plant) bool { return p.Sunlight == SunFull }
	case KeywordPartialShade:
		return func(p Plant) bool { return p.Sunlight == SunPartial || p.Sunlight == SunShade }
	case KeywordSlowGrowing:
		return func(p Plant) bool { return p.GrowthDays > slowGrowingDays }
	case KeywordIndoor:
		return func(p Plant) bool { return p.Indoor }
	case KeywordOutdoor:
		return func(p Plant) bool { return !p.Indoor }
	case KeywordHerbs:
		return func(p Plant) bool { return p.Type == "herb" }
	case KeywordVegetables:
		return func(p Plant) bool { return p.Type == "vegetable" }
	case KeywordFruits:
		return func(p Plant) bool { return p.Type == "fruit" }
	case KeywordSpecific:
		return func(Plant) bool { return true }
	default:
		// Unrecognized keywords serve the quick-growing OR salad-suitable
		// union so the quiz UI always has something to render.
		return func(p Plant) bool { return p.QuickGrowing || p.SaladSuitable }
	}
}

// prefsMatch applies each present preference as an extra conjunctive filter.
func prefsMatch(p Plant, prefs Preferences) bool {
	if prefs.Space != "" && !strings.EqualFold(p.Space, prefs.Space) {
		return false
	}
	if prefs.Sunlight != "" && p.Sunlight != NormalizeSunlight(prefs.Sunlight) {
		return false
	}
	if prefs.MaxGrowthDays > 0 && p.GrowthDays > prefs.MaxGrowthDays {
		return false
	}
	if prefs.IndoorOnly != nil && p.Indoor != *prefs.IndoorOnly {
		return false
	}
	return true
}
