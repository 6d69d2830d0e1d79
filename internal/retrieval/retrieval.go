// Package retrieval ranks the static corpus against a query using
// weighted lexical term matching.
package retrieval

import (
	"sort"
	"strings"
	"unicode"

	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/lexicon"
)

// #region retriever

// Retriever scores corpus documents against query terms. It is a pure
// function over the static corpus: no per-query state survives a call,
// so a single Retriever is safe to share across concurrent requests.
type Retriever struct {
	corpus  *corpus.Corpus
	lexicon *lexicon.Lexicon
	config  Config
	index   []docIndex
}

// docIndex caches per-document token occurrence counts, built once at
// construction since the corpus never changes.
type docIndex struct {
	fullCounts     map[string]int // headline + body
	headlineCounts map[string]int
	entities       map[string]bool // lowercased entity tickers
}

// NewRetriever builds a Retriever and its token index over the corpus.
func NewRetriever(c *corpus.Corpus, lex *lexicon.Lexicon, config Config) *Retriever {
	r := &Retriever{
		corpus:  c,
		lexicon: lex,
		config:  config,
		index:   make([]docIndex, c.Len()),
	}
	for i, doc := range c.All() {
		entities := make(map[string]bool, len(doc.Entities))
		for _, e := range doc.Entities {
			entities[strings.ToLower(e)] = true
		}
		r.index[i] = docIndex{
			fullCounts:     tokenCounts(doc.Headline + " " + doc.Body),
			headlineCounts: tokenCounts(doc.Headline),
			entities:       entities,
		}
	}
	return r
}

// #endregion retriever

// #region retrieve

// Retrieve ranks the corpus against the query and returns at most
// maxResults scored documents, highest score first, ties broken by corpus
// order. Zero-score documents are dropped. An empty or all-stopword query
// yields zero results, never an error. When entityFilter is non-empty,
// documents whose entity set does not intersect it score zero.
func (r *Retriever) Retrieve(query string, maxResults int, entityFilter []string) []ScoredDocument {
	terms := r.lexicon.ExpandTerms(r.lexicon.QueryTerms(query))
	if len(terms) == 0 || maxResults <= 0 {
		return nil
	}

	filter := make(map[string]bool, len(entityFilter))
	for _, e := range entityFilter {
		filter[strings.ToLower(e)] = true
	}

	var scored []ScoredDocument
	for i, doc := range r.corpus.All() {
		idx := r.index[i]
		if len(filter) > 0 && !intersects(idx.entities, filter) {
			continue
		}
		var score float64
		for _, term := range terms {
			score += r.config.BodyWeight * float64(idx.fullCounts[term])
			score += r.config.HeadlineWeight * float64(idx.headlineCounts[term])
		}
		if score > 0 {
			scored = append(scored, ScoredDocument{Document: doc, Score: score})
		}
	}

	// Stable sort keeps corpus order for equal scores.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// #endregion retrieve

// #region helpers

// tokenCounts lowercases text, splits it on non-alphanumeric runes, and
// counts occurrences per token. Whole-token counting avoids substring
// collisions ("car" never matches "carbon").
func tokenCounts(text string) map[string]int {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// intersects reports whether the two sets share any member.
func intersects(a, b map[string]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

// #endregion helpers
