package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/marketlens/marketlens/internal/credibility"
)

// #region client

// OpenAIClient is the real summarizer collaborator, backed by the chat
// completions API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient builds a client for the given API key and model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: client, model: model}
}

// #endregion client

// #region summarize

// Summarize sends the query and document set to the model and parses its
// JSON reply. One outbound request, no retry; any failure or unparseable
// reply is returned as an error.
func (c *OpenAIClient) Summarize(ctx context.Context, query string, docs []credibility.Assessed, breakdown credibility.Breakdown) (Analysis, error) {
	prompt := buildPrompt(query, docs, breakdown)

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You are a market-intelligence analyst. Answer strictly from the supplied documents and respond only with the requested JSON object."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(1200),
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("summarizer request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return Analysis{}, fmt.Errorf("summarizer returned no choices")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(response.Choices[0].Message.Content), &analysis); err != nil {
		return Analysis{}, fmt.Errorf("parse summarizer response: %w", err)
	}
	return analysis, nil
}

// #endregion summarize

// #region prompt

// buildPrompt lays out the query, the credibility breakdown, and the
// final documents, and pins the JSON reply contract.
func buildPrompt(query string, docs []credibility.Assessed, breakdown credibility.Breakdown) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following market-intelligence query using only the documents below.\n\n")
	sb.WriteString(fmt.Sprintf("Query: %s\n\n", query))
	sb.WriteString(fmt.Sprintf("Source credibility: mean score %.2f across %d documents.\n\n", breakdown.MeanScore, len(docs)))
	sb.WriteString("Respond with JSON only:\n")
	sb.WriteString(`{"narrative": "2-4 sentence analysis", "sentiment": "POSITIVE|NEUTRAL|NEGATIVE", "sentiment_score": -1.0 to 1.0, "confidence": "CONFIRMED|EMERGING|RUMOR", "confidence_reason": "one sentence", "key_insights": ["up to 4 short strings"]}`)
	sb.WriteString("\n\nDocuments:\n\n")

	for i, item := range docs {
		sb.WriteString(fmt.Sprintf("Document %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("Headline: %s\n", item.Document.Headline))
		sb.WriteString(fmt.Sprintf("Source: %s (%s, credibility %.2f %s)\n",
			item.Document.Source, item.Document.SourceType,
			item.Assessment.Score, item.Assessment.Tier))
		sb.WriteString(fmt.Sprintf("Body: %s\n\n", item.Document.Body))
	}

	return sb.String()
}

// #endregion prompt
