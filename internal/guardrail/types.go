package guardrail

// #region config

// Config holds the guardrail decision thresholds. These are hand-tuned
// constants; behavior compatibility matters more than their derivation,
// so change them only with a regression baseline in hand.
type Config struct {
	LowRelevanceThreshold float64 // mean document relevance below this rejects
	PrefixMinLen          int     // minimum term length for prefix matching
	PrefixCoverage        float64 // shorter string must cover this share of the longer
}

// DefaultConfig returns the standard guardrail thresholds.
func DefaultConfig() Config {
	return Config{
		LowRelevanceThreshold: 0.15,
		PrefixMinLen:          4,
		PrefixCoverage:        0.8,
	}
}

// #endregion config

// #region assessment

// Assessment is the guardrail verdict for a (query, document set) pair.
// It is the last gate before any generative call; Reason is written for
// direct display to the end user, not for logs.
type Assessment struct {
	Relevant        bool               `json:"relevant"`
	DocScores       map[string]float64 `json:"doc_scores"`
	MatchedEntities []string           `json:"matched_entities"`
	OffTopicTerms   []string           `json:"off_topic_terms"`
	Reason          string             `json:"reason"`
}

// #endregion assessment
