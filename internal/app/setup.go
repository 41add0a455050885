// internal/app/setup.go
package app

import (
	"fmt"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
)

// LoadTuning reads the tuning file (defaults when path is empty) and the tower
// table it points to. Flags that override seed are applied by the caller.
func LoadTuning(path string) (config.Tuning, error) {
	tuning := config.DefaultTuning()
	if path != "" {
		var err error
		if tuning, err = config.LoadTuning(path); err != nil {
			return tuning, err
		}
	}
	if tuning.TowerDefsPath != "" {
		if err := defs.LoadTowerDefinitions(tuning.TowerDefsPath); err != nil {
			return tuning, fmt.Errorf("tower definitions: %w", err)
		}
	}
	return tuning, nil
}
