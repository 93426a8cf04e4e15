// Package catalog provides the in-memory plant catalog: a read-only set of
// plant records loaded once at startup from a CSV file. It is intentionally
// small and dependency-free, but engineered with production-grade ergonomics:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Immutable, read-only catalog after construction (safe for concurrent use)
//   - Deterministic filtering and sorting (stable order for ties)
//   - An embedded fallback dataset so the service stays usable in a degraded
//     state when the CSV source is missing or corrupt
//
// The expected CSV columns are: name, type, category, sunlight, maintenance,
// space, growTime, description, tips, image_url, features.
package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sunlight levels after normalization. Source files use either
// full/partial/low or full_sun/partial_sun/shade; both map onto these.
const (
	SunFull    = "full_sun"
	SunPartial = "partial_sun"
	SunShade   = "shade"
)

// Space requirement levels.
const (
	SpaceSmall  = "small"
	SpaceMedium = "medium"
	SpaceLarge  = "large"
)

// Plant is one immutable catalog record. Identity is the case-insensitive
// name; records never change after load.
type Plant struct {
	Name        string `json:"name"`
	Type        string `json:"type"`     // vegetable | fruit | herb
	Category    string `json:"category"` // free-form grouping, e.g. "leafy green"
	Sunlight    string `json:"sunlight"` // normalized, see Sun* constants
	Maintenance string `json:"maintenance"`
	Space       string `json:"space"` // small | medium | large
	GrowTime    string `json:"grow_time"`
	GrowthDays  int    `json:"growth_days"` // lower bound parsed from GrowTime
	Description string `json:"description"`
	Tips        string `json:"tips"`
	ImageURL    string `json:"image_url"`
	Features    string `json:"features"` // raw comma-separated tags

	// Flags derived from Features/GrowthDays at load time.
	QuickGrowing     bool `json:"quick_growing"`
	SaladSuitable    bool `json:"salad_suitable"`
	SmoothieSuitable bool `json:"smoothie_suitable"`
	Indoor           bool `json:"indoor"`
}

// Catalog is the full, read-only set of plant records. Construct it once via
// Load or New and share the handle; all methods are safe for concurrent use.
type Catalog struct {
	cfg    config
	plants []Plant
}

// Option configures catalog construction.
type Option func(*config)

type config struct {
	filterCap int
}

func defaultConfig() config {
	return config{filterCap: 12}
}

// WithFilterCap overrides the maximum number of records returned by Filter.
// Values <= 0 are ignored.
func WithFilterCap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.filterCap = n
		}
	}
}

// New builds a Catalog from already-parsed records. Records with an empty
// name are dropped; derived flags are (re)computed for every record.
func New(records []Plant, opts ...Option) *Catalog {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	out := make([]Plant, 0, len(records))
	for _, p := range records {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		out = append(out, finalize(p))
	}
	return &Catalog{cfg: cfg, plants: out}
}

// Load reads the CSV at path and builds a Catalog from it. On any read or
// parse failure it returns a Catalog built from the embedded fallback records
// together with the error, so callers can log the degraded state and keep
// serving.
func Load(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(fallbackPlants(), opts...), err
	}
	defer f.Close()
	return LoadReader(f, opts...)
}

// LoadReader builds a Catalog from CSV text provided by r. The first row must
// be a header; unknown columns are ignored and missing ones read as empty.
// A malformed file falls back the same way Load does.
func LoadReader(r io.Reader, opts ...Option) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return New(fallbackPlants(), opts...), errors.New("catalog: missing CSV header")
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["name"]; !ok {
		return New(fallbackPlants(), opts...), errors.New("catalog: CSV header lacks name column")
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Plant
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip unparseable rows rather than discarding the whole file.
			continue
		}
		records = append(records, Plant{
			Name:        field(row, "name"),
			Type:        field(row, "type"),
			Category:    field(row, "category"),
			Sunlight:    field(row, "sunlight"),
			Maintenance: field(row, "maintenance"),
			Space:       field(row, "space"),
			GrowTime:    field(row, "growtime"),
			Description: field(row, "description"),
			Tips:        field(row, "tips"),
			ImageURL:    field(row, "image_url"),
			Features:    field(row, "features"),
		})
	}
	if len(records) == 0 {
		return New(fallbackPlants(), opts...), errors.New("catalog: CSV contained no records")
	}
	return New(records, opts...), nil
}

// Plants returns a copy of all records in catalog order.
func (c *Catalog) Plants() []Plant {
	out := make([]Plant, len(c.plants))
	copy(out, c.plants)
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int { return len(c.plants) }

// ByName returns the record whose name equals name case-insensitively.
func (c *Catalog) ByName(name string) (Plant, bool) {
	for _, p := range c.plants {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Plant{}, false
}

// ---- Normalization ----

var titleCaser = cases.Title(language.English)

// growthDaysRE picks the first integer out of a textual growing time such as
// "60-80 days" or "about 90 days".
var growthDaysRE = regexp.MustCompile(`\d+`)

// finalize normalizes enum fields and computes the derived flags.
func finalize(p Plant) Plant {
	p.Name = titleCaser.String(strings.ToLower(strings.TrimSpace(p.Name)))
	p.Type = normalizeType(p.Type)
	p.Sunlight = NormalizeSunlight(p.Sunlight)
	p.Space = strings.ToLower(strings.TrimSpace(p.Space))
	p.Maintenance = strings.ToLower(strings.TrimSpace(p.Maintenance))

	if p.GrowthDays == 0 {
		if m := growthDaysRE.FindString(p.GrowTime); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				p.GrowthDays = n
			}
		}
	}

	tags := strings.ToLower(p.Features)
	p.SaladSuitable = p.SaladSuitable || strings.Contains(tags, "salad")
	p.SmoothieSuitable = p.SmoothieSuitable || strings.Contains(tags, "smoothie")
	p.Indoor = p.Indoor || strings.Contains(tags, "indoor")
	p.QuickGrowing = p.QuickGrowing ||
		strings.Contains(tags, "quick") ||
		(p.GrowthDays > 0 && p.GrowthDays <= 60)
	return p
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	// Accept plural forms from sloppier sources.
	switch t {
	case "vegetables":
		return "vegetable"
	case "fruits":
		return "fruit"
	case "herbs":
		return "herb"
	}
	return t
}

// NormalizeSunlight maps either sunlight vocabulary onto the Sun* constants.
// Unknown values pass through lower-cased so filters still compare sanely.
func NormalizeSunlight(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "full_sun", "full sun":
		return SunFull
	case "partial", "partial_sun", "partial sun", "partial_shade", "partial shade":
		return SunPartial
	case "low", "shade":
		return SunShade
	}
	return strings.ToLower(strings.TrimSpace(s))
}
