package catalog

import "testing"

func TestIsRecommendationRequest(t *testing.T) {
	yes := []string{
		"Can you recommend something for my balcony?",
		"What should I grow in a small flat?",
		"which plants do well in shade",
		"SUGGEST a herb please",
		"where do I start with gardening?",
	}
	no := []string{
		"How often should I water basil?",
		"My tomato leaves are yellowing",
		"",
	}
	for _, m := range yes {
		if !IsRecommendationRequest(m) {
			t.Fatalf("expected recommendation request: %q", m)
		}
	}
	for _, m := range no {
		if IsRecommendationRequest(m) {
			t.Fatalf("unexpected recommendation request: %q", m)
		}
	}
}

func TestExtractMentions_OrderedByFirstOccurrence(t *testing.T) {
	c := New(fallbackPlants())
	reply := "Try basil first, then a cherry tomato, and mint for tea."
	got := c.ExtractMentions(reply, 4)
	want := []string{"Sweet Basil", "Cherry Tomato", "Fresh Mint"}
	if len(got) != len(want) {
		t.Fatalf("got %d mentions %v; want %v", len(got), names(got), want)
	}
	for i, n := range want {
		if got[i].Name != n {
			t.Fatalf("mention[%d] = %s; want %s (full: %v)", i, got[i].Name, n, names(got))
		}
	}
}

func TestExtractMentions_CapAndDefault(t *testing.T) {
	c := New(fallbackPlants())
	reply := "lettuce tomato basil mint pepper strawberry cucumber"

	// Explicit cap.
	if got := c.ExtractMentions(reply, 2); len(got) != 2 {
		t.Fatalf("cap=2 but got %d", len(got))
	}

	// Non-positive max defaults to 4.
	if got := c.ExtractMentions(reply, 0); len(got) != 4 {
		t.Fatalf("default cap should be 4, got %d", len(got))
	}
	if got := c.ExtractMentions(reply, -3); len(got) != 4 {
		t.Fatalf("negative max should default to 4, got %d", len(got))
	}
}

func TestExtractMentions_DeduplicatesByRecord(t *testing.T) {
	// One record that several keywords resolve to must appear once.
	c := New([]Plant{{Name: "Basil Mint Blend"}})
	got := c.ExtractMentions("use basil or mint, either works", 4)
	if len(got) != 1 {
		t.Fatalf("expected single deduplicated record, got %v", names(got))
	}
}

func TestExtractMentions_NoKnownPlants(t *testing.T) {
	c := New(fallbackPlants())
	if got := c.ExtractMentions("water in the morning and mulch well", 4); len(got) != 0 {
		t.Fatalf("expected no mentions, got %v", names(got))
	}
}

func TestExtractMentions_KeywordWithoutCatalogRecord(t *testing.T) {
	// "zucchini" is a scan keyword but the fixture has no matching record;
	// it must be skipped, not panic or emit a zero record.
	c := New(fallbackPlants())
	got := c.ExtractMentions("zucchini and lettuce", 4)
	if len(got) != 1 || got[0].Name != "Lettuce" {
		t.Fatalf("expected only Lettuce, got %v", names(got))
	}
}
