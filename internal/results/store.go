package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

const formatVersion = 1

// artifact is the single self-describing document written at sweep
// completion.
type artifact struct {
	FormatVersion int           `json:"format_version"`
	Rows          []TrialResult `json:"rows"`
}

// Save writes the full table to path as one JSON artifact, creating parent
// directories as needed.
func Save(path string, t Table) error {
	buf, err := json.MarshalIndent(artifact{FormatVersion: formatVersion, Rows: t}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result table: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads an artifact written by Save. All fields round-trip losslessly.
func Load(path string) (Table, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	var a artifact
	if err := json.Unmarshal(buf, &a); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if a.FormatVersion != formatVersion {
		return nil, fmt.Errorf("load %s: unsupported format version %d", path, a.FormatVersion)
	}
	return Table(a.Rows), nil
}
