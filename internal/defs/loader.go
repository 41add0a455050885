// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadTowerDefinitions reads a JSON array of tower definitions and overlays it
// on the default table. Types missing from the file keep their defaults.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := DefaultTowerDefs()
	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid tower definition: %w", err)
		}
		library[def.Type] = def
	}
	TowerDefs = library

	slog.Info("Loaded tower definitions", "count", len(towerDefs), "path", path)
	return nil
}
