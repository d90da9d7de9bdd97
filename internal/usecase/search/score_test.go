package search

import "testing"

func TestTokenize(t *testing.T) {
	if got := tokenize("  Wedding  Photography "); len(got) != 2 || got[0] != "wedding" || got[1] != "photography" {
		t.Errorf("unexpected tokens: %v", got)
	}
	if got := tokenize("   "); got != nil {
		t.Errorf("blank query must yield no terms, got %v", got)
	}
	if got := tokenize(""); got != nil {
		t.Errorf("empty query must yield no terms, got %v", got)
	}
}

func TestScoreListing_WeightsPerField(t *testing.T) {
	listings := fixtureListings()
	wed := &listings[0]

	score, ok := scoreListing(wed, []string{"photography"})
	if !ok {
		t.Fatal("expected match")
	}
	if score != weightName {
		t.Errorf("name-only match must score %v, got %v", weightName, score)
	}
}

func TestScoreListing_MultipleTermsAccumulate(t *testing.T) {
	listings := fixtureListings()
	wed := &listings[0]

	// "wedding" hits the name, "coverage" hits the description.
	score, ok := scoreListing(wed, []string{"wedding", "coverage"})
	if !ok {
		t.Fatal("expected match")
	}
	if score != weightName+weightDescription {
		t.Errorf("expected %v, got %v", weightName+weightDescription, score)
	}
}

func TestScoreListing_AnyTermMatches(t *testing.T) {
	listings := fixtureListings()
	dj := &listings[3]

	// One term misses, one term hits: OR semantics keep the listing.
	score, ok := scoreListing(dj, []string{"photography", "lighting"})
	if !ok {
		t.Fatal("expected match on the second term")
	}
	if score != weightDescription {
		t.Errorf("expected %v, got %v", weightDescription, score)
	}
}

func TestScoreListing_NoTerms_PassThrough(t *testing.T) {
	listings := fixtureListings()
	score, ok := scoreListing(&listings[0], nil)
	if !ok {
		t.Fatal("no terms must pass everything through")
	}
	if score != 0 {
		t.Errorf("pass-through score must be 0, got %v", score)
	}
}

func TestScoreListing_NoMatch(t *testing.T) {
	listings := fixtureListings()
	if _, ok := scoreListing(&listings[0], []string{"catering"}); ok {
		t.Error("expected no match")
	}
}
