package credibility

import (
	"math"
	"testing"

	"github.com/marketlens/marketlens/internal/corpus"
)

func doc(source string, sourceType corpus.SourceType) corpus.Document {
	return corpus.Document{
		ID:         "doc-" + source,
		Headline:   "headline",
		Body:       "body",
		Source:     source,
		SourceType: sourceType,
	}
}

func TestAssessBaseScores(t *testing.T) {
	s := NewScorer()
	cases := []struct {
		sourceType corpus.SourceType
		want       float64
	}{
		{corpus.SourceOfficial, 0.95},
		{corpus.SourceMajorPublication, 0.85},
		{corpus.SourceAnalyst, 0.75},
		{corpus.SourceSocialMedia, 0.40},
		{corpus.SourceUnknown, 0.30},
	}
	for _, tc := range cases {
		t.Run(string(tc.sourceType), func(t *testing.T) {
			a := s.Assess(doc("Unadjusted Outlet", tc.sourceType))
			if a.Score != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, a.Score)
			}
		})
	}
}

func TestAssessSourceAdjustments(t *testing.T) {
	s := NewScorer()

	reuters := s.Assess(doc("Reuters", corpus.SourceMajorPublication))
	if math.Abs(reuters.Score-0.90) > 1e-9 {
		t.Fatalf("expected Reuters 0.90, got %.4f", reuters.Score)
	}
	if reuters.Tier != TierHigh {
		t.Fatalf("expected Reuters HIGH, got %s", reuters.Tier)
	}

	rumors := s.Assess(doc("Daily Market Rumors", corpus.SourceUnknown))
	if math.Abs(rumors.Score-0.15) > 1e-9 {
		t.Fatalf("expected Daily Market Rumors 0.15, got %.4f", rumors.Score)
	}
	if rumors.Tier != TierUnverified {
		t.Fatalf("expected UNVERIFIED, got %s", rumors.Tier)
	}
}

func TestAssessUnknownSourceTypeDegrades(t *testing.T) {
	s := NewScorer()

	a := s.Assess(doc("Mystery Feed", corpus.SourceType("carrier-pigeon")))
	if a.Score != 0.30 {
		t.Fatalf("expected unknown base 0.30, got %.2f", a.Score)
	}
	if a.Tier != TierUnverified {
		t.Fatalf("expected UNVERIFIED, got %s", a.Tier)
	}
}

func TestAssessScoreAlwaysInRange(t *testing.T) {
	s := NewScorer()
	types := []corpus.SourceType{
		corpus.SourceOfficial, corpus.SourceMajorPublication, corpus.SourceAnalyst,
		corpus.SourceSocialMedia, corpus.SourceUnknown, corpus.SourceType("garbage"),
	}
	sources := []string{"Reuters", "Bloomberg", "Daily Market Rumors", "CryptoForum", "Nobody"}
	for _, st := range types {
		for _, src := range sources {
			a := s.Assess(doc(src, st))
			if a.Score < 0.1 || a.Score > 1.0 {
				t.Fatalf("score %.4f out of [0.1, 1.0] for %s/%s", a.Score, src, st)
			}
			if a.Tier != TierFor(a.Score) {
				t.Fatalf("tier %s inconsistent with score %.4f", a.Tier, a.Score)
			}
			if a.Rationale == "" {
				t.Fatalf("expected rationale for %s/%s", src, st)
			}
		}
	}
}

func TestClampBounds(t *testing.T) {
	if got := clamp(0.05); got != 0.1 {
		t.Fatalf("expected lower clamp 0.1, got %f", got)
	}
	if got := clamp(1.2); got != 1.0 {
		t.Fatalf("expected upper clamp 1.0, got %f", got)
	}
}

func TestTierThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Tier
	}{
		{0.95, TierHigh},
		{0.90, TierHigh},
		{0.89, TierMedium},
		{0.70, TierMedium},
		{0.69, TierLow},
		{0.50, TierLow},
		{0.49, TierUnverified},
		{0.10, TierUnverified},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Errorf("TierFor(%.2f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestFilterPreservesOrderAndIsInclusive(t *testing.T) {
	s := NewScorer()
	items := s.AssessAll([]corpus.Document{
		doc("Official A", corpus.SourceOfficial),          // 0.95
		doc("Social B", corpus.SourceSocialMedia),         // 0.40
		doc("Analyst C", corpus.SourceAnalyst),            // 0.75
		doc("Unknown D", corpus.SourceUnknown),            // 0.30
	})

	kept := s.Filter(items, 0.40)
	want := []string{"doc-Official A", "doc-Social B", "doc-Analyst C"}
	if len(kept) != len(want) {
		t.Fatalf("expected %d kept, got %d", len(want), len(kept))
	}
	for i, id := range want {
		if kept[i].Document.ID != id {
			t.Fatalf("order changed: expected %s at %d, got %s", id, i, kept[i].Document.ID)
		}
	}

	// Filter must not mutate its input.
	if len(items) != 4 {
		t.Fatalf("input mutated: %d items", len(items))
	}
}

func TestFilterEmptyResult(t *testing.T) {
	s := NewScorer()
	items := s.AssessAll([]corpus.Document{doc("Social", corpus.SourceSocialMedia)})

	if kept := s.Filter(items, 0.9); len(kept) != 0 {
		t.Fatalf("expected empty result, got %d", len(kept))
	}
}

func TestBreakdown(t *testing.T) {
	s := NewScorer()
	items := s.AssessAll([]corpus.Document{
		doc("Official A", corpus.SourceOfficial),  // 0.95 HIGH
		doc("Official B", corpus.SourceOfficial),  // 0.95 HIGH
		doc("Analyst C", corpus.SourceAnalyst),    // 0.75 MEDIUM
		doc("Social D", corpus.SourceSocialMedia), // 0.40 UNVERIFIED
	})

	b := s.BreakdownOf(items)
	if b.Tiers[TierHigh] != 2 || b.Tiers[TierMedium] != 1 || b.Tiers[TierUnverified] != 1 {
		t.Fatalf("unexpected tier histogram: %+v", b.Tiers)
	}
	wantMean := (0.95 + 0.95 + 0.75 + 0.40) / 4
	if math.Abs(b.MeanScore-wantMean) > 1e-9 {
		t.Fatalf("expected mean %.4f, got %.4f", wantMean, b.MeanScore)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	s := NewScorer()
	b := s.BreakdownOf(nil)
	if b.MeanScore != 0 || len(b.Tiers) != 0 {
		t.Fatalf("expected zero breakdown, got %+v", b)
	}
}
