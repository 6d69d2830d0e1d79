package dedup

import (
	"strings"
	"testing"

	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/credibility"
)

func assessed(id, headline, body string, score float64) credibility.Assessed {
	return credibility.Assessed{
		Document: corpus.Document{ID: id, Headline: headline, Body: body},
		Assessment: credibility.Assessment{
			Score: score,
			Tier:  credibility.TierFor(score),
		},
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "Apple reported record quarterly revenue today"
	b := "Apple posted record revenue for the quarter"

	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("similarity not symmetric: %f vs %f", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilaritySelfIsOne(t *testing.T) {
	texts := []string{
		"Apple reported record quarterly revenue",
		"one two three four",
		"", // empty token sets are identical
	}
	for _, text := range texts {
		if sim := Similarity(text, text); sim != 1.0 {
			t.Fatalf("expected sim(a,a)=1.0 for %q, got %f", text, sim)
		}
	}
}

func TestSimilarityDisjointIsZero(t *testing.T) {
	if sim := Similarity("apple banana cherry", "dog elephant fox"); sim != 0 {
		t.Fatalf("expected 0, got %f", sim)
	}
}

func TestSimilarityIgnoresShortTokensAndCase(t *testing.T) {
	// Only tokens longer than two characters participate.
	if sim := Similarity("AN IT of APPLE Revenue", "apple revenue"); sim != 1.0 {
		t.Fatalf("expected 1.0, got %f", sim)
	}
}

func TestDeduplicateKeepsHigherCredibilityMember(t *testing.T) {
	// ~80% token overlap, different credibility.
	shared := "nvidia reported record data center revenue driven demand accelerators"
	items := []credibility.Assessed{
		assessed("lower", "", shared+" reuters said", 0.85),
		assessed("higher", "", shared+" company announced", 0.95),
	}

	outcome := Deduplicate(items, 0.6)
	if len(outcome.Unique) != 1 {
		t.Fatalf("expected 1 unique, got %d", len(outcome.Unique))
	}
	if outcome.Unique[0].Document.ID != "higher" {
		t.Fatalf("expected higher-credibility doc kept, got %s", outcome.Unique[0].Document.ID)
	}
	if len(outcome.Duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(outcome.Duplicates))
	}
	dup := outcome.Duplicates[0]
	if dup.Item.Document.ID != "lower" {
		t.Fatalf("expected lower dropped, got %s", dup.Item.Document.ID)
	}
	if !strings.Contains(dup.Reason, "near-duplicate") {
		t.Fatalf("expected tagged reason, got %q", dup.Reason)
	}
}

func TestDeduplicateKeepsDistinctDocuments(t *testing.T) {
	items := []credibility.Assessed{
		assessed("a", "Apple earnings beat", "Apple posted strong quarterly results.", 0.95),
		assessed("b", "Oil prices slide", "Crude futures dropped on weak demand.", 0.85),
	}

	outcome := Deduplicate(items, 0.6)
	if len(outcome.Unique) != 2 || len(outcome.Duplicates) != 0 {
		t.Fatalf("expected 2 unique / 0 duplicates, got %d / %d",
			len(outcome.Unique), len(outcome.Duplicates))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	shared := "tesla margin outlook hinges energy storage ramp through next year"
	items := []credibility.Assessed{
		assessed("a", "", shared+" alpha", 0.95),
		assessed("b", "", shared+" beta", 0.85),
		assessed("c", "Completely different text", "about banking credit conditions", 0.75),
	}

	first := Deduplicate(items, 0.6)
	second := Deduplicate(first.Unique, 0.6)

	if len(second.Duplicates) != 0 {
		t.Fatalf("expected no duplicates on second pass, got %d", len(second.Duplicates))
	}
	if len(second.Unique) != len(first.Unique) {
		t.Fatalf("unique set changed: %d -> %d", len(first.Unique), len(second.Unique))
	}
	for i := range first.Unique {
		if second.Unique[i].Document.ID != first.Unique[i].Document.ID {
			t.Fatalf("unique set reordered at %d", i)
		}
	}
}

func TestDeduplicateDeterministic(t *testing.T) {
	shared := "regional banks tighten credit commercial real estate stress"
	items := []credibility.Assessed{
		assessed("x", "", shared+" one", 0.85),
		assessed("y", "", shared+" two", 0.85),
		assessed("z", "", shared+" three", 0.85),
	}

	first := Deduplicate(items, 0.5)
	for i := 0; i < 10; i++ {
		again := Deduplicate(items, 0.5)
		if len(again.Unique) != len(first.Unique) {
			t.Fatalf("nondeterministic unique count on run %d", i)
		}
		for j := range first.Unique {
			if again.Unique[j].Document.ID != first.Unique[j].Document.ID {
				t.Fatalf("nondeterministic partitioning on run %d", i)
			}
		}
	}
	// Equal scores: input order breaks the tie, so "x" must be the keeper.
	if first.Unique[0].Document.ID != "x" {
		t.Fatalf("expected x kept on tie, got %s", first.Unique[0].Document.ID)
	}
}

func TestDeduplicateSortsByCredibilityBeforeComparing(t *testing.T) {
	shared := "microsoft cloud strength drives quarterly results azure growth"
	// Lower-credibility doc appears first in the input.
	items := []credibility.Assessed{
		assessed("low", "", shared+" reported", 0.40),
		assessed("high", "", shared+" announced", 0.95),
	}

	outcome := Deduplicate(items, 0.6)
	if outcome.Unique[0].Document.ID != "high" {
		t.Fatalf("expected high-credibility doc preferred, got %s", outcome.Unique[0].Document.ID)
	}
}

func TestDeduplicateBelowThresholdKeepsBoth(t *testing.T) {
	items := []credibility.Assessed{
		assessed("a", "", "apple banana cherry grape melon", 0.9),
		assessed("b", "", "apple banana rocket engine turbine", 0.8),
	}

	// Overlap is 2/8 = 0.25, under the 0.6 threshold.
	outcome := Deduplicate(items, 0.6)
	if len(outcome.Unique) != 2 {
		t.Fatalf("expected both kept, got %d unique", len(outcome.Unique))
	}
}

func TestDeduplicateEmptyInput(t *testing.T) {
	outcome := Deduplicate(nil, 0.6)
	if len(outcome.Unique) != 0 || len(outcome.Duplicates) != 0 {
		t.Fatalf("expected empty outcome, got %+v", outcome)
	}
}
