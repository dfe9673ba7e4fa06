package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON serializes the records as an ordered array and moves it into
// place atomically, so a failed run never leaves a truncated document.
// Text is kept as UTF-8, not escaped.
func WriteJSON(path string, records []ProductRecord) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".produtos-*.json")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return fmt.Errorf("encode products: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
