package credibility

import "github.com/marketlens/marketlens/internal/corpus"

// #region tier

// Tier is the discrete trust bucket derived from a continuous score.
type Tier string

const (
	TierHigh       Tier = "HIGH"
	TierMedium     Tier = "MEDIUM"
	TierLow        Tier = "LOW"
	TierUnverified Tier = "UNVERIFIED"
)

// Fixed tier thresholds.
const (
	highThreshold   = 0.90
	mediumThreshold = 0.70
	lowThreshold    = 0.50
)

// TierFor maps a credibility score onto its tier.
func TierFor(score float64) Tier {
	switch {
	case score >= highThreshold:
		return TierHigh
	case score >= mediumThreshold:
		return TierMedium
	case score >= lowThreshold:
		return TierLow
	default:
		return TierUnverified
	}
}

// #endregion tier

// #region assessment

// Assessment is the credibility verdict for a single document. Derived
// deterministically from provenance, recomputed per request, never stored.
type Assessment struct {
	Score     float64 `json:"score"`
	Tier      Tier    `json:"tier"`
	Rationale string  `json:"rationale"`
}

// Assessed pairs a document with its credibility assessment.
type Assessed struct {
	Document   corpus.Document
	Assessment Assessment
}

// #endregion assessment

// #region breakdown

// Breakdown summarizes credibility across a document set.
type Breakdown struct {
	Tiers     map[Tier]int `json:"tiers"`
	MeanScore float64      `json:"mean_score"`
}

// #endregion breakdown
