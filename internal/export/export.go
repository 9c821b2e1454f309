// Package export writes the study data to external files and reads it back.
// JSON round-trips the whole document; XLSX produces a spreadsheet with one
// sheet of topics and one of homework for use outside the tool.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studytrack/internal/storage"
	"studytrack/internal/types"
)

// WriteFile exports the document to path, picking the format from the file
// extension: .xlsx produces a spreadsheet, anything else JSON.
func WriteFile(path string, doc *types.Document) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteXLSX(path, doc)
	}
	return WriteJSON(path, doc)
}

// WriteJSON exports the full document as indented JSON.
func WriteJSON(path string, doc *types.Document) error {
	doc.RebuildSubjects()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// importRequiredKeys are the minimum keys an import file must carry. The
// remaining document fields default when absent.
var importRequiredKeys = []string{"topics", "total_reviews", "subjects"}

// ReadJSON imports a document previously exported as JSON. Files missing the
// core keys are rejected with storage.ErrMalformedDocument.
func ReadJSON(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedDocument, err)
	}
	for _, key := range importRequiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", storage.ErrMalformedDocument, key)
		}
	}

	doc := types.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedDocument, err)
	}
	if doc.Topics == nil {
		doc.Topics = map[string]*types.Topic{}
	}
	if doc.Homework == nil {
		doc.Homework = map[string]*types.Homework{}
	}
	doc.RebuildSubjects()
	return doc, nil
}
