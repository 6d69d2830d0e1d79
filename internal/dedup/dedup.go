// Package dedup removes near-duplicate documents from a
// credibility-filtered set using lexical Jaccard similarity.
package dedup

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/marketlens/marketlens/internal/credibility"
)

// DefaultThreshold is the Jaccard similarity at or above which two
// documents count as near-duplicates.
const DefaultThreshold = 0.6

// #region outcome

// Duplicate is a dropped document together with the reason it was dropped.
type Duplicate struct {
	Item   credibility.Assessed
	Reason string
}

// Outcome partitions the input into kept and dropped documents.
type Outcome struct {
	Unique     []credibility.Assessed
	Duplicates []Duplicate
}

// #endregion outcome

// #region deduplicate

// Deduplicate collapses near-duplicate clusters, keeping the
// higher-credibility member of each. The input is stable-sorted by
// descending credibility (ties keep input order) so the partitioning is
// fully deterministic: identical input order and scores always produce
// identical output. Pairwise comparison is quadratic, which is fine at
// the capped input sizes reaching this stage.
func Deduplicate(items []credibility.Assessed, threshold float64) Outcome {
	ordered := make([]credibility.Assessed, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Assessment.Score > ordered[b].Assessment.Score
	})

	outcome := Outcome{}
	var keptSets []map[string]bool

	for _, item := range ordered {
		set := tokenSet(item.Document.Headline + " " + item.Document.Body)

		dup := false
		for i, kept := range keptSets {
			if sim := jaccard(set, kept); sim >= threshold {
				outcome.Duplicates = append(outcome.Duplicates, Duplicate{
					Item: item,
					Reason: fmt.Sprintf("near-duplicate of %s (similarity %.2f >= %.2f)",
						outcome.Unique[i].Document.ID, sim, threshold),
				})
				dup = true
				break
			}
		}
		if !dup {
			outcome.Unique = append(outcome.Unique, item)
			keptSets = append(keptSets, set)
		}
	}

	return outcome
}

// #endregion deduplicate

// #region similarity

// Similarity computes the Jaccard similarity between the token sets of
// two texts. Symmetric, and 1.0 for identical texts.
func Similarity(a, b string) float64 {
	return jaccard(tokenSet(a), tokenSet(b))
}

// jaccard computes |a∩b| / |a∪b|. Two empty sets are identical, so the
// similarity is 1.
func jaccard(a, b map[string]bool) float64 {
	union := len(a) + len(b)
	if union == 0 {
		return 1.0
	}
	var shared int
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for t := range small {
		if large[t] {
			shared++
		}
	}
	return float64(shared) / float64(union-shared)
}

// tokenSet builds the whitespace-tokenized, punctuation-stripped,
// lowercase word set of a text. Tokens of length <= 2 are excluded.
func tokenSet(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		set[w] = true
	}
	return set
}

// #endregion similarity
