package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeSourceType(t *testing.T) {
	cases := []struct {
		in   SourceType
		want SourceType
	}{
		{SourceOfficial, SourceOfficial},
		{SourceMajorPublication, SourceMajorPublication},
		{SourceAnalyst, SourceAnalyst},
		{SourceSocialMedia, SourceSocialMedia},
		{SourceUnknown, SourceUnknown},
		{SourceType(""), SourceUnknown},
		{SourceType("blog"), SourceUnknown},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCorpusPreservesOrderAndLookup(t *testing.T) {
	docs := []Document{
		{ID: "a", Headline: "first"},
		{ID: "b", Headline: "second"},
		{ID: "c", Headline: "third"},
	}
	c := New(docs)

	if c.Len() != 3 {
		t.Fatalf("expected 3 docs, got %d", c.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if c.All()[i].ID != want {
			t.Fatalf("order changed at %d: got %s", i, c.All()[i].ID)
		}
	}

	doc, ok := c.Get("b")
	if !ok || doc.Headline != "second" {
		t.Fatalf("Get(b) = %+v, %v", doc, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestCorpusCopiesInput(t *testing.T) {
	docs := []Document{{ID: "a", Headline: "original"}}
	c := New(docs)
	docs[0].Headline = "mutated"

	got, _ := c.Get("a")
	if got.Headline != "original" {
		t.Fatalf("corpus shares caller slice: %q", got.Headline)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	content := `
documents:
  - id: doc-1
    headline: Apple earnings beat
    body: Apple reported strong results.
    source: Reuters
    source_type: major-publication
    entities: [AAPL]
    sector: technology
    published_at: 2026-08-01T12:00:00Z
  - id: doc-2
    headline: Odd provenance
    body: Some text.
    source: Somewhere
    source_type: blog
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 docs, got %d", c.Len())
	}

	doc, _ := c.Get("doc-1")
	if doc.SourceType != SourceMajorPublication {
		t.Fatalf("unexpected source type %q", doc.SourceType)
	}
	if len(doc.Entities) != 1 || doc.Entities[0] != "AAPL" {
		t.Fatalf("unexpected entities %v", doc.Entities)
	}
	if !doc.PublishedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", doc.PublishedAt)
	}

	// Unrecognized source types degrade instead of failing the load.
	odd, _ := c.Get("doc-2")
	if odd.SourceType != SourceUnknown {
		t.Fatalf("expected unknown source type, got %q", odd.SourceType)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadDocumentsKeepsRawSourceType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	content := `
documents:
  - id: doc-1
    headline: h
    body: b
    source: s
    source_type: blog
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}

	docs, err := ReadDocuments(path)
	if err != nil {
		t.Fatalf("ReadDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0].SourceType != SourceType("blog") {
		t.Fatalf("expected raw source type preserved, got %+v", docs)
	}
}
