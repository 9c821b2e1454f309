// Package storage loads and saves the studytrack JSON data file. The engine
// never touches the filesystem itself; it receives a fully materialized
// document from here and hands it back to be persisted.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"studytrack/internal/types"
)

// requiredKeys must all be present in a data file for it to be considered
// well formed.
var requiredKeys = []string{
	"topics",
	"total_reviews",
	"subjects",
	"streak",
	"homework",
	"total_homework_completed",
}

// FileStore persists a types.Document as a single JSON file.
type FileStore struct {
	// Path is the location of the data file.
	Path string
}

// New creates a store for the given data file path.
func New(path string) *FileStore {
	return &FileStore{Path: path}
}

// Exists reports whether the data file is present on disk.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads and validates the data file. A missing file yields a fresh
// default document; a present but unreadable or malformed file is an error
// (callers decide whether to fall back to defaults). The subject index is
// rebuilt from the topic map after every load.
func (s *FileStore) Load() (*types.Document, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return types.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	if err := validateKeys(data); err != nil {
		return nil, err
	}

	doc := types.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	normalize(doc)
	return doc, nil
}

// Save writes the document atomically: the content goes to a temp file in
// the same directory, is fsynced, then renamed over the data file. The
// previous file is kept as a .bak until the new write lands, mirroring the
// backup-and-restore dance the tool has always done.
func (s *FileStore) Save(doc *types.Document) error {
	doc.RebuildSubjects()

	backup := s.Path + ".bak"
	hadPrevious := s.Exists()
	if hadPrevious {
		if err := os.Rename(s.Path, backup); err != nil {
			return fmt.Errorf("back up data file: %w", err)
		}
	}

	if err := atomicWrite(s.Path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}); err != nil {
		if hadPrevious {
			// Best effort restore of the previous document.
			_ = os.Rename(backup, s.Path)
		}
		return err
	}

	if hadPrevious {
		if err := os.Remove(backup); err != nil {
			return fmt.Errorf("remove backup: %w", err)
		}
	}
	return nil
}

// validateKeys checks the raw JSON object for every required top-level key.
func validateKeys(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: missing key %q", ErrMalformedDocument, key)
		}
	}
	return nil
}

// normalize fills nil maps left by JSON null values and rederives the
// subject index.
func normalize(doc *types.Document) {
	if doc.Topics == nil {
		doc.Topics = map[string]*types.Topic{}
	}
	if doc.Homework == nil {
		doc.Homework = map[string]*types.Homework{}
	}
	doc.RebuildSubjects()
}

// atomicWrite writes to a temp file and renames it into place.
func atomicWrite(path string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := writeFunc(tmpFile); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write content: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to final: %w", err)
	}

	success = true
	return nil
}
