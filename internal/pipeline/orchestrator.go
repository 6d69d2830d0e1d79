// Package pipeline sequences retrieval, credibility filtering,
// deduplication, and the relevance guardrail, then hands the surviving
// document set to the external summarizer.
package pipeline

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/credibility"
	"github.com/marketlens/marketlens/internal/dedup"
	"github.com/marketlens/marketlens/internal/guardrail"
	"github.com/marketlens/marketlens/internal/retrieval"
	"github.com/marketlens/marketlens/internal/summarizer"
	"github.com/marketlens/marketlens/internal/trends"
)

// #endregion

// #region orchestrator-struct

// Orchestrator is the top-level coordinator. All stages are injected at
// construction; in particular the summarizer client arrives as an
// explicit dependency, never as a lazily-built global.
type Orchestrator struct {
	retriever  *retrieval.Retriever
	scorer     *credibility.Scorer
	guard      *guardrail.Guardrail
	summarizer summarizer.Summarizer // real collaborator; may be nil
	mock       summarizer.Summarizer // canned fallback, always set
	trends     *trends.Log
	config     Config
}

// Deps wires all stage implementations into the orchestrator.
type Deps struct {
	Retriever  *retrieval.Retriever
	Scorer     *credibility.Scorer
	Guardrail  *guardrail.Guardrail
	Summarizer summarizer.Summarizer // nil when no real client is configured
	Mock       summarizer.Summarizer
	Trends     *trends.Log
}

// NewOrchestrator creates a fully wired orchestrator.
func NewOrchestrator(deps Deps, config Config) *Orchestrator {
	if deps.Mock == nil {
		deps.Mock = summarizer.NewMock()
	}
	if deps.Trends == nil {
		deps.Trends = trends.NewLog(100)
	}
	return &Orchestrator{
		retriever:  deps.Retriever,
		scorer:     deps.Scorer,
		guard:      deps.Guardrail,
		summarizer: deps.Summarizer,
		mock:       deps.Mock,
		trends:     deps.Trends,
		config:     config,
	}
}

// Trends exposes the session-local trend log.
func (o *Orchestrator) Trends() *trends.Log {
	return o.trends
}

// #endregion orchestrator-struct

// #region run

// Run executes the full decision pipeline for one query. Empty-result
// conditions and guardrail rejections return Success=true results with an
// explanatory Message and zero sources; an empty query or a summarizer
// failure returns an error instead.
func (o *Orchestrator) Run(ctx context.Context, query string, opts Options) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must be non-empty")
	}
	opts = opts.withDefaults()
	start := time.Now()

	result := &Result{
		Success:   true,
		RequestID: uuid.New().String(),
		Query:     query,
	}

	// Stage 1: retrieve at 2x the final cap for filtering headroom.
	candidates := o.retriever.Retrieve(query, o.config.RetrievalHeadroom*opts.MaxSources, opts.EntityFilter)
	result.Telemetry.Retrieved = len(candidates)
	if len(candidates) == 0 {
		log.Printf("[PIPE] %s: no candidates retrieved", result.RequestID)
		o.trends.Record(trends.Entry{Query: query, Accepted: false})
		result.Message = "no relevant content was found in the corpus for this query"
		return o.finish(result, start), nil
	}

	// Stage 2: credibility filter.
	docs := make([]corpus.Document, len(candidates))
	for i, c := range candidates {
		docs[i] = c.Document
	}
	credible := o.scorer.Filter(o.scorer.AssessAll(docs), opts.MinCredibility)
	result.Telemetry.AfterCredibility = len(credible)
	if len(credible) == 0 {
		log.Printf("[PIPE] %s: no sources above credibility %.2f", result.RequestID, opts.MinCredibility)
		o.trends.Record(trends.Entry{Query: query, Accepted: false})
		result.Message = fmt.Sprintf("no sources met the minimum credibility threshold %.2f", opts.MinCredibility)
		return o.finish(result, start), nil
	}

	// Stage 3: collapse near-duplicates, then cap. The dedup output is
	// already credibility-sorted, so the cap keeps the most trusted set.
	outcome := dedup.Deduplicate(credible, o.config.DedupThreshold)
	result.Telemetry.AfterDedup = len(outcome.Unique)
	result.Telemetry.DuplicatesRemoved = len(outcome.Duplicates)

	final := outcome.Unique
	if len(final) > opts.MaxSources {
		final = final[:opts.MaxSources]
	}

	// Stage 4: relevance guardrail sees exactly what would be sent onward.
	verdict := o.guard.Evaluate(query, final)
	o.trends.Record(trends.Entry{
		Query:           query,
		MatchedEntities: verdict.MatchedEntities,
		Accepted:        verdict.Relevant,
	})
	if !verdict.Relevant {
		log.Printf("[PIPE] %s: guardrail rejected: %s", result.RequestID, verdict.Reason)
		result.Telemetry.GuardrailRejected = true
		result.Message = verdict.Reason
		result.Analysis = neutralAnalysis(verdict.Reason)
		return o.finish(result, start), nil
	}

	// Stage 5: summarize. One outbound call; failure is surfaced, never
	// replaced with fabricated content.
	breakdown := o.scorer.BreakdownOf(final)
	client := o.summarizer
	if opts.UseMock || client == nil {
		client = o.mock
		result.Telemetry.UsedMock = true
	}
	analysis, err := client.Summarize(ctx, query, final, breakdown)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	result.Analysis = &analysis
	result.Breakdown = breakdown
	result.Sources = summaries(final)
	result.Telemetry.FinalUsed = len(final)
	log.Printf("[PIPE] %s: retrieved=%d credible=%d unique=%d used=%d",
		result.RequestID, result.Telemetry.Retrieved, result.Telemetry.AfterCredibility,
		result.Telemetry.AfterDedup, result.Telemetry.FinalUsed)
	return o.finish(result, start), nil
}

// #endregion run

// #region helpers

// finish stamps timing fields on the way out.
func (o *Orchestrator) finish(result *Result, start time.Time) *Result {
	result.Telemetry.ElapsedMS = time.Since(start).Milliseconds()
	result.GeneratedAt = time.Now().UTC()
	return result
}

// neutralAnalysis is the fixed low-confidence result used when the
// guardrail vetoes summarization. The guardrail's reason rides along as
// the displayed explanation.
func neutralAnalysis(reason string) *summarizer.Analysis {
	return &summarizer.Analysis{
		Narrative:        "The available sources do not contain reliable information relevant to this query, so no analysis was generated.",
		Sentiment:        summarizer.SentimentNeutral,
		SentimentScore:   0,
		Confidence:       summarizer.ConfidenceRumor,
		ConfidenceReason: reason,
	}
}

// summaries strips full body text from the final documents.
func summaries(items []credibility.Assessed) []SourceSummary {
	out := make([]SourceSummary, len(items))
	for i, item := range items {
		out[i] = SourceSummary{
			ID:          item.Document.ID,
			Headline:    item.Document.Headline,
			Source:      item.Document.Source,
			SourceType:  item.Document.SourceType,
			Credibility: item.Assessment,
			Entities:    item.Document.Entities,
			PublishedAt: item.Document.PublishedAt,
		}
	}
	return out
}

// #endregion helpers
