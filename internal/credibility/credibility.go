// Package credibility assigns trust scores and tiers to documents from
// their provenance.
package credibility

import (
	"fmt"

	"github.com/marketlens/marketlens/internal/corpus"
)

// #region score-tables

// Score bounds. Every final score is clamped into this range.
const (
	minScore = 0.1
	maxScore = 1.0
)

// baseScores keys credibility off the source-type tag.
var baseScores = map[corpus.SourceType]float64{
	corpus.SourceOfficial:         0.95,
	corpus.SourceMajorPublication: 0.85,
	corpus.SourceAnalyst:          0.75,
	corpus.SourceSocialMedia:      0.40,
	corpus.SourceUnknown:          0.30,
}

// sourceAdjustments models named-source reputation on top of the base
// score: premium wire services earn up to +0.05, lower-tier outlets lose
// up to -0.15.
var sourceAdjustments = map[string]float64{
	"Reuters":                  +0.05,
	"Bloomberg":                +0.05,
	"Associated Press":         +0.04,
	"The Wall Street Journal":  +0.03,
	"Financial Times":          +0.03,
	"Daily Market Rumors":      -0.15,
	"StockTwits":               -0.05,
	"CryptoForum":              -0.10,
	"The Margin Call Blog":     -0.05,
}

// #endregion score-tables

// #region scorer

// Scorer derives credibility assessments from document provenance.
// Stateless; safe to share across concurrent requests.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// #endregion scorer

// #region assess

// Assess scores a single document. Unknown source-type values degrade to
// the unknown base score; scoring never fails on malformed input.
func (s *Scorer) Assess(doc corpus.Document) Assessment {
	sourceType := doc.SourceType.Normalize()
	score := baseScores[sourceType]

	rationale := fmt.Sprintf("%s source", sourceType)
	if delta, ok := sourceAdjustments[doc.Source]; ok {
		score += delta
		if delta > 0 {
			rationale = fmt.Sprintf("%s source, %s reputation bonus %+.2f", sourceType, doc.Source, delta)
		} else {
			rationale = fmt.Sprintf("%s source, %s reputation penalty %+.2f", sourceType, doc.Source, delta)
		}
	}

	score = clamp(score)
	return Assessment{
		Score:     score,
		Tier:      TierFor(score),
		Rationale: rationale,
	}
}

// AssessAll scores every document, preserving input order.
func (s *Scorer) AssessAll(docs []corpus.Document) []Assessed {
	items := make([]Assessed, len(docs))
	for i, doc := range docs {
		items[i] = Assessed{Document: doc, Assessment: s.Assess(doc)}
	}
	return items
}

// #endregion assess

// #region filter

// Filter keeps items with score >= minScore. Pure predicate, input order
// preserved, input never mutated.
func (s *Scorer) Filter(items []Assessed, minScore float64) []Assessed {
	var kept []Assessed
	for _, item := range items {
		if item.Assessment.Score >= minScore {
			kept = append(kept, item)
		}
	}
	return kept
}

// #endregion filter

// #region breakdown

// BreakdownOf builds the tier histogram and mean score for a set.
func (s *Scorer) BreakdownOf(items []Assessed) Breakdown {
	b := Breakdown{Tiers: make(map[Tier]int)}
	if len(items) == 0 {
		return b
	}
	var sum float64
	for _, item := range items {
		b.Tiers[item.Assessment.Tier]++
		sum += item.Assessment.Score
	}
	b.MeanScore = sum / float64(len(items))
	return b
}

// #endregion breakdown

// #region helpers

func clamp(score float64) float64 {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// #endregion helpers
