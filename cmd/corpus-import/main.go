package main

import (
	"fmt"
	"log"
	"os"

	"github.com/marketlens/marketlens/internal/corpus"
)

// #region main
func main() {
	snapshotPath := envOr("CORPUS_SNAPSHOT", "marketlens.db")

	fmt.Println("=== Corpus Import Tool ===")
	fmt.Printf("  snapshot: %s\n", snapshotPath)

	var docs []corpus.Document
	if len(os.Args) > 1 {
		var err error
		docs, err = corpus.ReadDocuments(os.Args[1])
		if err != nil {
			log.Fatalf("failed to read corpus file: %v", err)
		}
		fmt.Printf("  source: %s (%d documents)\n", os.Args[1], len(docs))
	} else {
		docs = corpus.Seed()
		fmt.Printf("  source: built-in seed (%d documents)\n", len(docs))
	}

	store, err := corpus.OpenStore(snapshotPath)
	if err != nil {
		log.Fatalf("failed to open snapshot: %v", err)
	}
	defer store.Close()

	for _, doc := range docs {
		if doc.ID == "" {
			log.Fatalf("document with headline %q has no ID", doc.Headline)
		}
		if err := store.Insert(doc); err != nil {
			log.Fatalf("failed to insert %s: %v", doc.ID, err)
		}
	}

	fmt.Printf("Imported %d documents.\n", len(docs))
}

// #endregion main

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
