// Package guardrail decides whether a final candidate set is actually
// on-topic for the query, independent of retrieval scores. Term overlap
// is a weak signal; entity and topic correctness is the strong one, and
// this gate is what keeps the summarizer from narrating confidently
// about topics the corpus does not cover.
package guardrail

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/marketlens/marketlens/internal/corpus"
	"github.com/marketlens/marketlens/internal/credibility"
	"github.com/marketlens/marketlens/internal/lexicon"
)

// Per-term relevance score components.
const (
	textMatchWeight   = 0.3
	entityTagWeight   = 0.4
	sectorTagWeight   = 0.3
	tableEntityWeight = 0.2
)

// #region guardrail

// Guardrail evaluates query/document-set relevance against the curated
// entity and off-topic tables.
type Guardrail struct {
	lexicon *lexicon.Lexicon
	config  Config
}

// NewGuardrail creates a Guardrail over the given lexicon.
func NewGuardrail(lex *lexicon.Lexicon, config Config) *Guardrail {
	return &Guardrail{lexicon: lex, config: config}
}

// #endregion guardrail

// #region evaluate

// Evaluate runs the relevance decision for the final document set, in
// strict priority order:
//  1. known-entity match in the query → relevant
//  2. no entity match but the documents' own tags overlap the query → relevant
//  3. neither, and an off-topic indicator matched → not relevant
//  4. mean document relevance below the low-relevance threshold → not relevant
//  5. otherwise → relevant
//
// An empty document set short-circuits to not relevant before any scoring.
func (g *Guardrail) Evaluate(query string, docs []credibility.Assessed) Assessment {
	if len(docs) == 0 {
		return Assessment{
			Relevant:  false,
			DocScores: map[string]float64{},
			Reason:    "no documents retrieved",
		}
	}

	terms := g.lexicon.QueryTerms(query)
	normalizedQuery := strings.ToLower(query)

	matched := g.matchEntities(terms, normalizedQuery)

	// Off-topic indicators are only consulted when no entity matched;
	// entity evidence always overrides an off-topic guess.
	var offTopic []string
	if len(matched) == 0 {
		offTopic = g.offTopicHits(terms)
	}

	tagOverlap := anyDocTagOverlap(terms, docs)

	scores := make(map[string]float64, len(docs))
	var sum float64
	for _, item := range docs {
		s := g.scoreDocument(terms, item.Document)
		scores[item.Document.ID] = s
		sum += s
	}
	mean := sum / float64(len(docs))

	assessment := Assessment{
		DocScores:       scores,
		MatchedEntities: matched,
		OffTopicTerms:   offTopic,
	}

	switch {
	case len(matched) > 0:
		assessment.Relevant = true
		assessment.Reason = fmt.Sprintf("query matches known entities: %s", strings.Join(matched, ", "))
	case tagOverlap:
		assessment.Relevant = true
		assessment.Reason = "query terms overlap the retrieved documents' entity or sector tags"
	case len(offTopic) > 0:
		assessment.Relevant = false
		assessment.Reason = fmt.Sprintf(
			"the query appears to be about %s, which this corpus does not cover",
			strings.Join(offTopic, ", "))
	case mean < g.config.LowRelevanceThreshold:
		assessment.Relevant = false
		assessment.Reason = fmt.Sprintf(
			"retrieved documents are only weakly related to the query (mean relevance %.2f)", mean)
	default:
		assessment.Relevant = true
		assessment.Reason = "no known entity matched, but nothing indicates the query is off-topic"
	}

	return assessment
}

// #endregion evaluate

// #region entity-matching

// matchEntities returns the canonical names of entities whose surface
// forms match the query. A variant matches on an exact term, on a
// multi-word phrase contained in the normalized query, or on a prefix
// match restricted to terms of length >= PrefixMinLen where the shorter
// string covers at least PrefixCoverage of the longer one.
func (g *Guardrail) matchEntities(terms []string, normalizedQuery string) []string {
	var matched []string
	seen := make(map[string]bool)
	for _, entity := range g.lexicon.Entities() {
		if seen[entity.Name] {
			continue
		}
		for _, variant := range entity.Variants {
			if g.variantMatches(variant, terms, normalizedQuery) {
				seen[entity.Name] = true
				matched = append(matched, entity.Name)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched
}

func (g *Guardrail) variantMatches(variant string, terms []string, normalizedQuery string) bool {
	if strings.Contains(variant, " ") {
		return strings.Contains(normalizedQuery, variant)
	}
	for _, term := range terms {
		if term == variant {
			return true
		}
		if g.prefixMatch(term, variant) {
			return true
		}
	}
	return false
}

// prefixMatch applies the restricted prefix rule: both strings at least
// PrefixMinLen long, one a prefix of the other, and the shorter covering
// at least PrefixCoverage of the longer. The length floor prevents
// accidental collisions on short words.
func (g *Guardrail) prefixMatch(a, b string) bool {
	if len(a) < g.config.PrefixMinLen || len(b) < g.config.PrefixMinLen {
		return false
	}
	shorter, longer := a, b
	if len(b) < len(a) {
		shorter, longer = b, a
	}
	if !strings.HasPrefix(longer, shorter) {
		return false
	}
	return float64(len(shorter))/float64(len(longer)) >= g.config.PrefixCoverage
}

// #endregion entity-matching

// #region off-topic

// offTopicHits intersects query terms with the off-topic indicator list.
func (g *Guardrail) offTopicHits(terms []string) []string {
	indicator := make(map[string]bool)
	for _, t := range g.lexicon.OffTopicTerms() {
		indicator[t] = true
	}
	var hits []string
	for _, term := range terms {
		if indicator[term] {
			hits = append(hits, term)
		}
	}
	return hits
}

// #endregion off-topic

// #region tag-overlap

// anyDocTagOverlap reports whether any query term textually matches a
// document's own entity or sector tags. This covers queries the entity
// table is missing but the documents themselves clearly answer.
func anyDocTagOverlap(terms []string, docs []credibility.Assessed) bool {
	for _, item := range docs {
		for _, term := range terms {
			if docTagMatches(term, item.Document) {
				return true
			}
		}
	}
	return false
}

func docTagMatches(term string, doc corpus.Document) bool {
	for _, e := range doc.Entities {
		if strings.ToLower(e) == term {
			return true
		}
	}
	if doc.Sector == "" {
		return false
	}
	for _, tok := range tokens(doc.Sector) {
		if tok == term {
			return true
		}
	}
	return false
}

// #endregion tag-overlap

// #region doc-scoring

// scoreDocument computes a [0, 1] relevance score for one document: per
// query term, +0.3 for a text occurrence, +0.4 for an entity tag match,
// +0.3 for a sector tag match, and +0.2 when the term maps via the entity
// table to an entity that appears in the document. The sum is normalized
// by the query term count and capped at 1.
func (g *Guardrail) scoreDocument(terms []string, doc corpus.Document) float64 {
	if len(terms) == 0 {
		return 0
	}

	textTokens := tokenSet(doc.Headline + " " + doc.Body)
	sectorTokens := tokenSet(doc.Sector)
	entityTags := make(map[string]bool, len(doc.Entities))
	for _, e := range doc.Entities {
		entityTags[strings.ToLower(e)] = true
	}

	var sum float64
	for _, term := range terms {
		if textTokens[term] {
			sum += textMatchWeight
		}
		if entityTags[term] {
			sum += entityTagWeight
		}
		if sectorTokens[term] {
			sum += sectorTagWeight
		}
		if g.termEntityInDoc(term, doc, textTokens, entityTags) {
			sum += tableEntityWeight
		}
	}

	score := sum / float64(len(terms))
	if score > 1 {
		score = 1
	}
	return score
}

// termEntityInDoc reports whether term maps to a table entity that shows
// up in the document, either through its tags or through any of the
// entity's surface forms appearing in the text.
func (g *Guardrail) termEntityInDoc(term string, doc corpus.Document, textTokens, entityTags map[string]bool) bool {
	lowerText := strings.ToLower(doc.Headline + " " + doc.Body)
	for _, entity := range g.lexicon.Entities() {
		termMatches := false
		for _, variant := range entity.Variants {
			if !strings.Contains(variant, " ") && (term == variant || g.prefixMatch(term, variant)) {
				termMatches = true
				break
			}
		}
		if !termMatches {
			continue
		}
		for _, variant := range entity.Variants {
			if entityTags[variant] {
				return true
			}
			if strings.Contains(variant, " ") {
				if strings.Contains(lowerText, variant) {
					return true
				}
			} else if textTokens[variant] {
				return true
			}
		}
	}
	return false
}

// #endregion doc-scoring

// #region helpers

func tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokens(text) {
		set[t] = true
	}
	return set
}

// #endregion helpers
