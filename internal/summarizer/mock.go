package summarizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/marketlens/marketlens/internal/credibility"
)

// #region mock

// Mock is a canned summarizer for environments without API access and
// for tests. It records every invocation.
type Mock struct {
	// Err, when set, is returned from Summarize instead of the canned
	// analysis. Used to exercise collaborator-failure paths.
	Err error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records one Summarize invocation.
type MockCall struct {
	Query  string
	DocIDs []string
}

// NewMock returns a Mock summarizer.
func NewMock() *Mock {
	return &Mock{}
}

// Summarize returns a deterministic canned analysis derived from the
// input sizes, or Err when configured.
func (m *Mock) Summarize(ctx context.Context, query string, docs []credibility.Assessed, breakdown credibility.Breakdown) (Analysis, error) {
	ids := make([]string, len(docs))
	for i, item := range docs {
		ids[i] = item.Document.ID
	}
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Query: query, DocIDs: ids})
	m.mu.Unlock()

	if m.Err != nil {
		return Analysis{}, m.Err
	}

	confidence := ConfidenceEmerging
	if breakdown.MeanScore >= 0.85 {
		confidence = ConfidenceConfirmed
	}
	return Analysis{
		Narrative:        fmt.Sprintf("Mock analysis for %q based on %d documents.", query, len(docs)),
		Sentiment:        SentimentNeutral,
		SentimentScore:   0,
		Confidence:       confidence,
		ConfidenceReason: fmt.Sprintf("mock output; mean source credibility %.2f", breakdown.MeanScore),
		KeyInsights:      []string{"mock summarizer output, no generative call was made"},
	}, nil
}

// Calls returns a copy of the recorded invocations.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// #endregion mock
