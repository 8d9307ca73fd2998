// Package export writes catalog records to the persisted JSON format:
// a UTF-8 JSON array with human-readable indentation, written wholesale.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/storeops/shopify-catalog/pkg/catalog"
)

// Marshal renders records as an indented JSON array. Unset price and
// inventory values serialize as null; a nil slice renders as an empty array.
func Marshal(records []catalog.Record) ([]byte, error) {
	if records == nil {
		records = []catalog.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records []catalog.Record) error {
	data, err := Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// ReadFile parses a previously exported file back into records.
func ReadFile(path string) ([]catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []catalog.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return records, nil
}
