package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region yaml-load

// corpusFile is the on-disk YAML layout consumed by LoadFile and
// cmd/corpus-import.
type corpusFile struct {
	Documents []Document `yaml:"documents"`
}

// LoadFile reads a YAML corpus file and returns an in-memory Corpus.
// Missing optional fields (entities, sector) stay empty; unrecognized
// source types degrade to unknown rather than failing the load.
func LoadFile(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var file corpusFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	for i := range file.Documents {
		file.Documents[i].SourceType = file.Documents[i].SourceType.Normalize()
	}
	return New(file.Documents), nil
}

// ReadDocuments reads a YAML corpus file without building a Corpus.
// Used by cmd/corpus-import.
func ReadDocuments(path string) ([]Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var file corpusFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	return file.Documents, nil
}

// #endregion yaml-load
