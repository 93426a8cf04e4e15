// Mention extraction.
//
// ExtractMentions post-processes free-form advice text: it scans for
// occurrences of known edible-plant keywords and surfaces the matching
// catalog records in order of first mention. Matching is deliberately loose
// (case-insensitive substring in either direction), so a short keyword can
// hit a longer catalog name. That imprecision is accepted product behavior,
// not something to tighten silently.
package catalog

import (
	"sort"
	"strings"
)

// plantKeywords is the fixed allow-list of edible-plant names scanned for in
// generated advice text. Order does not matter; mention position does.
var plantKeywords = []string{
	"tomato", "lettuce", "basil", "mint", "pepper", "strawberry",
	"cucumber", "spinach", "kale", "carrot", "radish", "cilantro",
	"coriander", "parsley", "rosemary", "thyme", "oregano", "chive",
	"blueberry", "bean", "pea", "zucchini", "onion", "garlic",
}

// recommendTriggers classify an inbound message as a recommendation request.
// Substring match, case-insensitive.
var recommendTriggers = []string{
	"recommend", "suggest", "what should i grow", "what should i plant",
	"what can i grow", "which plants", "best plants", "good plants",
	"help me choose", "where do i start",
}

// IsRecommendationRequest reports whether msg asks for plant recommendations.
func IsRecommendationRequest(msg string) bool {
	m := strings.ToLower(msg)
	for _, t := range recommendTriggers {
		if strings.Contains(m, t) {
			return true
		}
	}
	return false
}

// ExtractMentions scans reply for plant keywords and returns the matching
// catalog records, ordered by first keyword occurrence, de-duplicated by
// record name, truncated to max entries. A non-positive max defaults to 4.
func (c *Catalog) ExtractMentions(reply string, max int) []Plant {
	if max <= 0 {
		max = 4
	}
	lower := strings.ToLower(reply)

	type hit struct {
		keyword string
		pos     int
	}
	hits := make([]hit, 0, 4)
	for _, kw := range plantKeywords {
		if i := strings.Index(lower, kw); i >= 0 {
			hits = append(hits, hit{keyword: kw, pos: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]struct{}, max)
	out := make([]Plant, 0, max)
	for _, h := range hits {
		p, ok := c.matchKeyword(h.keyword)
		if !ok {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
		if len(out) >= max {
			break
		}
	}
	return out
}

// matchKeyword returns the first record whose name contains the keyword or
// whose name is contained in it, case-insensitively.
func (c *Catalog) matchKeyword(keyword string) (Plant, bool) {
	kw := strings.ToLower(keyword)
	for _, p := range c.plants {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, kw) || strings.Contains(kw, name) {
			return p, true
		}
	}
	return Plant{}, false
}
