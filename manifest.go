package sampleprep

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestName is the manifest's filename inside the output directory.
const ManifestName = "manifest.json"

// Entry maps a processed output file to the label the beat simulator loads
// it under. Entries are appended in processing order and never mutated.
type Entry struct {
	File  string `json:"file"`
	Label string `json:"label"`
}

// WriteManifest serializes entries as an indented JSON array at path,
// overwriting any previous manifest.
func WriteManifest(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
