package storage

import (
	"encoding/json"
	"fmt"
	"olx-scraper/models"
	"olx-scraper/utils"
	"os"
	"path/filepath"
)

// JSONWriter saves a search to a single indented JSON document,
// overwriting the previous run's file.
type JSONWriter struct {
	path string
}

func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Write stores results as UTF-8 with non-ASCII text (₹, etc.) kept literal.
func (w *JSONWriter) Write(results models.SearchResults) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("json write error: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close file: %w", err)
	}

	utils.Success("Results saved to %s", w.path)
	return nil
}
