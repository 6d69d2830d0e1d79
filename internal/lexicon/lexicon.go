// Package lexicon holds the curated lookup tables used for query
// interpretation: canonical entities with their surface-form variants,
// ticker synonyms for query expansion, the off-topic indicator list, and
// tokenization rules. A Lexicon is built once at process start and never
// mutated afterwards.
package lexicon

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// #region entity

// Entity is a canonical company, sector, or macro topic together with the
// surface forms a query may use for it (tickers, aliases, executive names,
// product names).
type Entity struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

// #endregion entity

// #region lexicon

// Lexicon bundles all curated query-interpretation tables.
type Lexicon struct {
	entities       []Entity
	offTopicTerms  []string
	tickerSynonyms map[string]string
	twoLetterAllow map[string]bool
}

// New builds a Lexicon from explicit tables. All inputs are lowercased on
// the way in so matching never depends on caller casing.
func New(entities []Entity, offTopic []string, tickerSynonyms map[string]string, twoLetterAllow []string) *Lexicon {
	lex := &Lexicon{
		entities:       make([]Entity, 0, len(entities)),
		offTopicTerms:  make([]string, 0, len(offTopic)),
		tickerSynonyms: make(map[string]string, len(tickerSynonyms)),
		twoLetterAllow: make(map[string]bool, len(twoLetterAllow)),
	}
	for _, e := range entities {
		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			variants = append(variants, strings.ToLower(strings.TrimSpace(v)))
		}
		lex.entities = append(lex.entities, Entity{Name: e.Name, Variants: variants})
	}
	for _, t := range offTopic {
		lex.offTopicTerms = append(lex.offTopicTerms, strings.ToLower(strings.TrimSpace(t)))
	}
	for term, ticker := range tickerSynonyms {
		lex.tickerSynonyms[strings.ToLower(term)] = strings.ToLower(ticker)
	}
	for _, t := range twoLetterAllow {
		lex.twoLetterAllow[strings.ToLower(t)] = true
	}
	return lex
}

// Entities returns the canonical entity table.
func (l *Lexicon) Entities() []Entity {
	return l.entities
}

// OffTopicTerms returns the curated list of topics the corpus is known
// not to cover.
func (l *Lexicon) OffTopicTerms() []string {
	return l.offTopicTerms
}

// TickerFor returns the ticker synonym mapped to a query term, if any.
func (l *Lexicon) TickerFor(term string) (string, bool) {
	ticker, ok := l.tickerSynonyms[term]
	return ticker, ok
}

// #endregion lexicon

// #region query-terms

// QueryTerms normalizes a query into lowercase terms: stopwords removed,
// terms shorter than 3 runes dropped unless they appear on the two-letter
// allow-list. Duplicate terms are collapsed, first occurrence wins.
func (l *Lexicon) QueryTerms(query string) []string {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool)
	var terms []string
	for _, w := range words {
		if len(w) <= 2 && !l.twoLetterAllow[w] {
			continue
		}
		if stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// ExpandTerms appends the mapped ticker synonym for every term that has
// one, keeping the original terms first.
func (l *Lexicon) ExpandTerms(terms []string) []string {
	expanded := make([]string, 0, len(terms))
	expanded = append(expanded, terms...)
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		seen[t] = true
	}
	for _, t := range terms {
		if ticker, ok := l.tickerSynonyms[t]; ok && !seen[ticker] {
			seen[ticker] = true
			expanded = append(expanded, ticker)
		}
	}
	return expanded
}

// #endregion query-terms

// #region yaml-load

// lexiconFile is the on-disk YAML override layout.
type lexiconFile struct {
	Entities       []Entity          `yaml:"entities"`
	OffTopicTerms  []string          `yaml:"off_topic_terms"`
	TickerSynonyms map[string]string `yaml:"ticker_synonyms"`
	TwoLetterAllow []string          `yaml:"two_letter_allow"`
}

// LoadFile reads a YAML lexicon override file.
func LoadFile(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon file: %w", err)
	}
	return New(file.Entities, file.OffTopicTerms, file.TickerSynonyms, file.TwoLetterAllow), nil
}

// #endregion yaml-load
