package corpus

import "time"

// #region source-type

// SourceType classifies document provenance into a closed set of buckets.
type SourceType string

const (
	SourceOfficial         SourceType = "official"
	SourceMajorPublication SourceType = "major-publication"
	SourceAnalyst          SourceType = "analyst"
	SourceSocialMedia      SourceType = "social-media"
	SourceUnknown          SourceType = "unknown"
)

// Normalize maps arbitrary source-type strings onto the closed set.
// Anything unrecognized degrades to SourceUnknown.
func (s SourceType) Normalize() SourceType {
	switch s {
	case SourceOfficial, SourceMajorPublication, SourceAnalyst, SourceSocialMedia:
		return s
	default:
		return SourceUnknown
	}
}

// #endregion source-type

// #region document

// Document is an immutable corpus record. Owned by the static corpus,
// never mutated after load.
type Document struct {
	ID          string     `json:"id" yaml:"id"`
	Headline    string     `json:"headline" yaml:"headline"`
	Body        string     `json:"body" yaml:"body"`
	Source      string     `json:"source" yaml:"source"`
	SourceType  SourceType `json:"source_type" yaml:"source_type"`
	Entities    []string   `json:"entities" yaml:"entities"`
	Sector      string     `json:"sector,omitempty" yaml:"sector,omitempty"`
	PublishedAt time.Time  `json:"published_at" yaml:"published_at"`
}

// #endregion document

// #region corpus

// Corpus is the fixed, preloaded document collection. Read-only after
// construction, safe to share across concurrent requests.
type Corpus struct {
	docs []Document
	byID map[string]int
}

// New builds a Corpus from the given documents, preserving input order.
// Corpus order is the tie-break order used by retrieval.
func New(docs []Document) *Corpus {
	c := &Corpus{
		docs: make([]Document, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	copy(c.docs, docs)
	for i, d := range c.docs {
		c.byID[d.ID] = i
	}
	return c
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// All returns the documents in corpus order. Callers must not mutate.
func (c *Corpus) All() []Document {
	return c.docs
}

// Get looks a document up by ID.
func (c *Corpus) Get(id string) (Document, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Document{}, false
	}
	return c.docs[i], true
}

// #endregion corpus
