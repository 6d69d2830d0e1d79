package retrieval

import "github.com/marketlens/marketlens/internal/corpus"

// #region scored-document

// ScoredDocument pairs a corpus document with its retrieval relevance
// score. Produced fresh per query and discarded after the request.
type ScoredDocument struct {
	Document corpus.Document
	Score    float64
}

// #endregion scored-document

// #region config

// Config holds retrieval weighting knobs.
type Config struct {
	BodyWeight     float64 // weight per term occurrence in headline+body
	HeadlineWeight float64 // additional weight per headline occurrence
}

// DefaultConfig returns the standard weighting: every occurrence counts
// once, headline occurrences count twice in total.
func DefaultConfig() Config {
	return Config{
		BodyWeight:     1.0,
		HeadlineWeight: 1.0,
	}
}

// #endregion config
