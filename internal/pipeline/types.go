package pipeline

// #region imports
import (
	"time"

	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/credibility"
	"github.com/marketlens/marketlens/internal/dedup"
	"github.com/marketlens/marketlens/internal/summarizer"
)

// #endregion

// #region options

// Options is the per-request inbound contract.
type Options struct {
	MaxSources     int      // final document cap
	MinCredibility float64  // minimum credibility score, in [0, 1]
	EntityFilter   []string // optional entity/ticker restriction
	UseMock        bool     // bypass the real summarizer
}

// DefaultOptions returns the standard request options.
func DefaultOptions() Options {
	return Options{
		MaxSources:     8,
		MinCredibility: 0.4,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxSources <= 0 {
		o.MaxSources = def.MaxSources
	}
	if o.MinCredibility <= 0 {
		o.MinCredibility = def.MinCredibility
	}
	return o
}

// #endregion options

// #region config

// Config holds pipeline-level knobs.
type Config struct {
	RetrievalHeadroom int     // retrieve this multiple of MaxSources
	DedupThreshold    float64 // Jaccard near-duplicate threshold
}

// DefaultConfig returns the standard pipeline configuration: retrieve at
// twice the final cap to leave headroom for filtering losses.
func DefaultConfig() Config {
	return Config{
		RetrievalHeadroom: 2,
		DedupThreshold:    dedup.DefaultThreshold,
	}
}

// #endregion config

// #region telemetry

// Telemetry preserves every stage's input/output counts for
// explainability. Built incrementally per request, never stored past the
// response.
type Telemetry struct {
	Retrieved         int   `json:"retrieved"`
	AfterCredibility  int   `json:"after_credibility"`
	AfterDedup        int   `json:"after_dedup"`
	DuplicatesRemoved int   `json:"duplicates_removed"`
	FinalUsed         int   `json:"final_used"`
	ElapsedMS         int64 `json:"elapsed_ms"`
	GuardrailRejected bool  `json:"guardrail_rejected"`
	UsedMock          bool  `json:"used_mock"`
}

// #endregion telemetry

// #region source-summary

// SourceSummary is a final document with the full body text stripped,
// as handed to the calling layer.
type SourceSummary struct {
	ID          string                 `json:"id"`
	Headline    string                 `json:"headline"`
	Source      string                 `json:"source"`
	SourceType  corpus.SourceType      `json:"source_type"`
	Credibility credibility.Assessment `json:"credibility"`
	Entities    []string               `json:"entities"`
	PublishedAt time.Time              `json:"published_at"`
}

// #endregion source-summary

// #region result

// Result is the outbound contract produced by the core. Empty-result
// conditions and guardrail rejections are successful outcomes carrying an
// explanatory Message; only input validation and collaborator failures
// surface as errors from Run.
type Result struct {
	Success     bool                  `json:"success"`
	RequestID   string                `json:"request_id"`
	Query       string                `json:"query"`
	Analysis    *summarizer.Analysis  `json:"analysis,omitempty"`
	Message     string                `json:"message,omitempty"`
	Sources     []SourceSummary       `json:"sources"`
	Breakdown   credibility.Breakdown `json:"credibility_breakdown"`
	Telemetry   Telemetry             `json:"telemetry"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// #endregion result
