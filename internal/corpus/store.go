package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	headline      TEXT NOT NULL,
	body          TEXT NOT NULL,
	source        TEXT NOT NULL,
	source_type   TEXT NOT NULL,
	entities      TEXT,
	sector        TEXT,
	published_at  TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store manages a corpus snapshot in SQLite. The snapshot is written by
// cmd/corpus-import and read once at process start; the pipeline itself
// only ever sees the in-memory Corpus.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// OpenStore opens a SQLite snapshot and runs migrations.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region insert

// Insert writes one document into the snapshot, replacing any prior
// row with the same ID.
func (s *Store) Insert(doc Document) error {
	entities, err := json.Marshal(doc.Entities)
	if err != nil {
		return fmt.Errorf("marshal entities: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO documents
		 (id, headline, body, source, source_type, entities, sector, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID,
		doc.Headline,
		doc.Body,
		doc.Source,
		string(doc.SourceType.Normalize()),
		string(entities),
		doc.Sector,
		doc.PublishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", doc.ID, err)
	}
	return nil
}

// #endregion insert

// #region load-all

// LoadAll reads every document from the snapshot in rowid order.
func (s *Store) LoadAll() ([]Document, error) {
	rows, err := s.db.Query(
		`SELECT id, headline, body, source, source_type, entities, sector, published_at
		 FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			doc          Document
			sourceType   string
			entitiesJSON sql.NullString
			sector       sql.NullString
			publishedAt  string
		)
		if err := rows.Scan(&doc.ID, &doc.Headline, &doc.Body, &doc.Source,
			&sourceType, &entitiesJSON, &sector, &publishedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.SourceType = SourceType(sourceType).Normalize()
		doc.Sector = sector.String
		if entitiesJSON.Valid && entitiesJSON.String != "" {
			if err := json.Unmarshal([]byte(entitiesJSON.String), &doc.Entities); err != nil {
				return nil, fmt.Errorf("unmarshal entities for %s: %w", doc.ID, err)
			}
		}
		ts, err := time.Parse(time.RFC3339Nano, publishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp for %s: %w", doc.ID, err)
		}
		doc.PublishedAt = ts
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// LoadCorpus reads the full snapshot into an in-memory Corpus.
func (s *Store) LoadCorpus() (*Corpus, error) {
	docs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	return New(docs), nil
}

// #endregion load-all
