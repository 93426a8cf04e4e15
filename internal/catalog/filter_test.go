package catalog

import "testing"

// The embedded fallback dataset doubles as a realistic filter fixture: it has
// quick and slow growers, all three space and sunlight levels, and indoor
// records.
func testCatalog(opts ...Option) *Catalog {
	return New(fallbackPlants(), opts...)
}

func names(ps []Plant) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestFilter_SlowGrowing_OnlyOver90Days(t *testing.T) {
	c := testCatalog()
	got := c.Filter(KeywordSlowGrowing, Preferences{})
	if len(got) == 0 {
		t.Fatalf("expected slow growers in fixture")
	}
	for _, p := range got {
		if p.GrowthDays <= 90 {
			t.Fatalf("%s has %d growth days; slow_growing must be > 90", p.Name, p.GrowthDays)
		}
	}
	// Ascending by growth duration.
	for i := 1; i < len(got); i++ {
		if got[i].GrowthDays < got[i-1].GrowthDays {
			t.Fatalf("results not sorted: %v", names(got))
		}
	}
	if got[0].Name != "Pumpkin" {
		t.Fatalf("expected Pumpkin (95d) first, got %v", names(got))
	}
}

func TestFilter_UnknownKeyword_ServesQuickOrSaladUnion(t *testing.T) {
	c := testCatalog()
	got := c.Filter("totally_made_up", Preferences{})
	if len(got) == 0 {
		t.Fatalf("unknown keyword must not return empty")
	}
	for _, p := range got {
		if !p.QuickGrowing && !p.SaladSuitable {
			t.Fatalf("%s is neither quick nor salad-suitable", p.Name)
		}
	}
	// Same result as the explicit union, record for record.
	quick := c.Filter(KeywordQuickGrowing, Preferences{})
	if len(got) < len(quick) {
		t.Fatalf("union smaller than one of its parts: %d < %d", len(got), len(quick))
	}
}

func TestFilter_CapTruncatesAfterSort(t *testing.T) {
	c := testCatalog(WithFilterCap(2))
	got := c.Filter(KeywordQuickGrowing, Preferences{})
	if len(got) != 2 {
		t.Fatalf("cap=2 but got %d records", len(got))
	}
	// The two fastest growers win, ties in catalog order.
	if got[0].Name != "Radish" || got[1].Name != "Sweet Basil" {
		t.Fatalf("expected fastest two [Radish Sweet Basil], got %v", names(got))
	}
}

func TestFilter_DefaultCapIsTwelve(t *testing.T) {
	c := testCatalog()
	got := c.Filter("anything_unrecognized", Preferences{})
	if len(got) > 12 {
		t.Fatalf("default cap exceeded: %d", len(got))
	}
}

func TestFilter_PreferencesNarrowConjunctively(t *testing.T) {
	c := testCatalog()

	t.Run("space and sunlight", func(t *testing.T) {
		got := c.Filter(KeywordQuickGrowing, Preferences{Space: "small", Sunlight: "partial"})
		if len(got) == 0 {
			t.Fatalf("expected matches")
		}
		for _, p := range got {
			if p.Space != SpaceSmall || p.Sunlight != SunPartial {
				t.Fatalf("%s does not satisfy prefs: space=%s sun=%s", p.Name, p.Space, p.Sunlight)
			}
		}
	})

	t.Run("max growth days", func(t *testing.T) {
		got := c.Filter(KeywordQuickGrowing, Preferences{MaxGrowthDays: 30})
		for _, p := range got {
			if p.GrowthDays > 30 {
				t.Fatalf("%s exceeds 30-day bound: %d", p.Name, p.GrowthDays)
			}
		}
		if len(got) == 0 {
			t.Fatalf("expected sub-30-day growers")
		}
	})

	t.Run("indoor only", func(t *testing.T) {
		indoor := true
		got := c.Filter(KeywordSaladSuitable, Preferences{IndoorOnly: &indoor})
		for _, p := range got {
			if !p.Indoor {
				t.Fatalf("%s is not indoor-suitable", p.Name)
			}
		}

		outdoor := false
		got = c.Filter(KeywordSaladSuitable, Preferences{IndoorOnly: &outdoor})
		for _, p := range got {
			if p.Indoor {
				t.Fatalf("%s should be excluded by indoor_only=false", p.Name)
			}
		}
	})

	t.Run("sunlight accepts either vocabulary", func(t *testing.T) {
		a := c.Filter(KeywordSpecific, Preferences{Sunlight: "partial"})
		b := c.Filter(KeywordSpecific, Preferences{Sunlight: "partial_sun"})
		if len(a) == 0 || len(a) != len(b) {
			t.Fatalf("vocabulary mismatch: partial=%d partial_sun=%d", len(a), len(b))
		}
	})
}

func TestFilter_TypeAndSpaceKeywords(t *testing.T) {
	c := testCatalog()
	cases := []struct {
		keyword string
		check   func(Plant) bool
	}{
		{KeywordHerbs, func(p Plant) bool { return p.Type == "herb" }},
		{KeywordVegetables, func(p Plant) bool { return p.Type == "vegetable" }},
		{KeywordFruits, func(p Plant) bool { return p.Type == "fruit" }},
		{KeywordSmallSpace, func(p Plant) bool { return p.Space == SpaceSmall }},
		{KeywordLargeSpace, func(p Plant) bool { return p.Space == SpaceLarge }},
		{KeywordFullSun, func(p Plant) bool { return p.Sunlight == SunFull }},
		{KeywordIndoor, func(p Plant) bool { return p.Indoor }},
		{KeywordOutdoor, func(p Plant) bool { return !p.Indoor }},
	}
	for _, tc := range cases {
		got := c.Filter(tc.keyword, Preferences{})
		if len(got) == 0 {
			t.Fatalf("keyword %q matched nothing in fixture", tc.keyword)
		}
		for _, p := range got {
			if !tc.check(p) {
				t.Fatalf("keyword %q returned non-matching record %s", tc.keyword, p.Name)
			}
		}
	}
}

func TestFilter_SpecificMatchesEverything(t *testing.T) {
	c := New(fallbackPlants(), WithFilterCap(100))
	got := c.Filter(KeywordSpecific, Preferences{})
	if len(got) != c.Len() {
		t.Fatalf("specific should match all %d records, got %d", c.Len(), len(got))
	}
}

func TestPreferences_IsZero(t *testing.T) {
	if !(Preferences{}).IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	f := false
	for _, p := range []Preferences{
		{Space: "small"},
		{Sunlight: "full"},
		{MaxGrowthDays: 1},
		{IndoorOnly: &f},
	} {
		if p.IsZero() {
			t.Fatalf("%+v should not report IsZero", p)
		}
	}
}
