package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/marketlens/marketlens/internal/config"
	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/credibility"
	"github.com/marketlens/marketlens/internal/guardrail"
	"github.com/marketlens/marketlens/internal/lexicon"
	"github.com/marketlens/marketlens/internal/pipeline"
	"github.com/marketlens/marketlens/internal/retrieval"
	"github.com/marketlens/marketlens/internal/summarizer"
	"github.com/marketlens/marketlens/internal/trends"
)

// #region main
func main() {
	cfg := config.Load()

	docs, err := loadCorpus(cfg)
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}

	var real summarizer.Summarizer
	if cfg.OpenAIAPIKey != "" && !cfg.UseMock {
		real = summarizer.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	pipeCfg := pipeline.DefaultConfig()
	pipeCfg.DedupThreshold = cfg.DedupThreshold

	orch := pipeline.NewOrchestrator(pipeline.Deps{
		Retriever:  retrieval.NewRetriever(docs, lex, retrieval.DefaultConfig()),
		Scorer:     credibility.NewScorer(),
		Guardrail:  guardrail.NewGuardrail(lex, guardrail.DefaultConfig()),
		Summarizer: real,
		Trends:     trends.NewLog(cfg.TrendCapacity),
	}, pipeCfg)

	fmt.Println("marketlens ready.")
	fmt.Printf("  corpus: %d documents | summarizer: %s\n", docs.Len(), summarizerLabel(real))
	fmt.Println("Type a query ('trends' for session trends, 'quit' to exit):")

	opts := pipeline.DefaultOptions()
	opts.MaxSources = cfg.MaxSources
	opts.MinCredibility = cfg.MinCredibility
	opts.UseMock = cfg.UseMock

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}
		if query == "trends" {
			printTrends(orch)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		result, err := orch.Run(ctx, query, opts)
		cancel()
		if err != nil {
			log.Printf("pipeline error: %v", err)
			continue
		}

		printResult(result)
	}
}

// #endregion main

// #region loading

// loadCorpus prefers the SQLite snapshot, then the YAML corpus file, then
// the built-in seed.
func loadCorpus(cfg config.Config) (*corpus.Corpus, error) {
	if cfg.CorpusSnapshot != "" {
		store, err := corpus.OpenStore(cfg.CorpusSnapshot)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadCorpus()
	}
	if cfg.CorpusFile != "" {
		return corpus.LoadFile(cfg.CorpusFile)
	}
	return corpus.New(corpus.Seed()), nil
}

func loadLexicon(cfg config.Config) (*lexicon.Lexicon, error) {
	if cfg.LexiconFile != "" {
		return lexicon.LoadFile(cfg.LexiconFile)
	}
	return lexicon.Default(), nil
}

func summarizerLabel(real summarizer.Summarizer) string {
	if real == nil {
		return "mock"
	}
	return "openai"
}

// #endregion loading

// #region output

func printResult(result *pipeline.Result) {
	if result.Analysis != nil {
		fmt.Printf("\n%s\n", result.Analysis.Narrative)
		fmt.Printf("  sentiment: %s (%.2f) | confidence: %s (%s)\n",
			result.Analysis.Sentiment, result.Analysis.SentimentScore,
			result.Analysis.Confidence, result.Analysis.ConfidenceReason)
		for _, insight := range result.Analysis.KeyInsights {
			fmt.Printf("  - %s\n", insight)
		}
	} else {
		fmt.Printf("\n%s\n", result.Message)
	}

	if len(result.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range result.Sources {
			fmt.Printf("  [%s %.2f] %s (%s)\n",
				src.Credibility.Tier, src.Credibility.Score, src.Headline, src.Source)
		}
	}

	t := result.Telemetry
	fmt.Printf("\n[%s] retrieved=%d credible=%d unique=%d dupes=%d used=%d rejected=%v mock=%v %dms\n\n",
		result.RequestID, t.Retrieved, t.AfterCredibility, t.AfterDedup,
		t.DuplicatesRemoved, t.FinalUsed, t.GuardrailRejected, t.UsedMock, t.ElapsedMS)
}

func printTrends(orch *pipeline.Orchestrator) {
	recent := orch.Trends().Recent(10)
	if len(recent) == 0 {
		fmt.Println("no queries this session")
		return
	}
	fmt.Println("Recent queries:")
	for _, e := range recent {
		status := "rejected"
		if e.Accepted {
			status = "accepted"
		}
		fmt.Printf("  %s  %-8s  %s\n", e.At.Format("15:04:05"), status, e.Query)
	}
	top := orch.Trends().TopEntities(5)
	if len(top) > 0 {
		fmt.Println("Top entities:")
		for _, ec := range top {
			fmt.Printf("  %dx %s\n", ec.Count, ec.Entity)
		}
	}
}

// #endregion output
