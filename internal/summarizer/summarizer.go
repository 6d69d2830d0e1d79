// Package summarizer defines the external generative-summarization
// collaborator. The pipeline prepares its input and consumes its
// structured output; everything else about generation lives behind the
// Summarizer interface.
package summarizer

import (
	"context"

	"github.com/marketlens/marketlens/internal/credibility"
)

// #region labels

// Sentiment labels.
const (
	SentimentPositive = "POSITIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentNegative = "NEGATIVE"
)

// Confidence labels.
const (
	ConfidenceConfirmed = "CONFIRMED"
	ConfidenceEmerging  = "EMERGING"
	ConfidenceRumor     = "RUMOR"
)

// #endregion labels

// #region analysis

// Analysis is the structured output of a summarization call.
type Analysis struct {
	Narrative         string   `json:"narrative"`
	Sentiment         string   `json:"sentiment"`
	SentimentScore    float64  `json:"sentiment_score"`
	Confidence        string   `json:"confidence"`
	ConfidenceReason  string   `json:"confidence_reason"`
	KeyInsights       []string `json:"key_insights"`
}

// #endregion analysis

// #region interface

// Summarizer produces a structured analysis for a query and its final
// document set. A failure must be surfaced by the caller, never replaced
// with fabricated content. Implementations make at most one outbound call
// per invocation; retry policy belongs to the collaborator, not this core.
type Summarizer interface {
	Summarize(ctx context.Context, query string, docs []credibility.Assessed, breakdown credibility.Breakdown) (Analysis, error)
}

// #endregion interface
