// internal/config/tuning.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning — параметры запуска, которые можно переопределить файлом tuning.yaml.
type Tuning struct {
	Seed           int64   `yaml:"seed"`
	InitialEnergy  int     `yaml:"initial_energy"`
	InitialHealth  float64 `yaml:"initial_health"`
	SiloBasePrice  int     `yaml:"silo_base_price"`
	WaveReward     int     `yaml:"wave_reward"`
	SandboxEnergy  int     `yaml:"sandbox_energy"`
	ObstacleCount  int     `yaml:"obstacle_count"`
	StartGatherers int     `yaml:"start_gatherers"`
	TowerDefsPath  string  `yaml:"tower_defs_path"`
}

func DefaultTuning() Tuning {
	return Tuning{
		InitialEnergy:  300,
		InitialHealth:  MaxCoreHealth,
		SiloBasePrice:  1000,
		WaveReward:     200,
		SandboxEnergy:  99999,
		ObstacleCount:  ObstacleAttempts,
		StartGatherers: 1,
	}
}

// LoadTuning reads a YAML file on top of DefaultTuning. Keys absent from the
// file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	switch {
	case t.InitialEnergy < 0:
		return fmt.Errorf("tuning: initial_energy must be >= 0, got %d", t.InitialEnergy)
	case t.InitialHealth <= 0 || t.InitialHealth > MaxCoreHealth:
		return fmt.Errorf("tuning: initial_health must be in (0, %v], got %v", MaxCoreHealth, t.InitialHealth)
	case t.SiloBasePrice <= 0:
		return fmt.Errorf("tuning: silo_base_price must be > 0, got %d", t.SiloBasePrice)
	case t.ObstacleCount < 0:
		return fmt.Errorf("tuning: obstacle_count must be >= 0, got %d", t.ObstacleCount)
	case t.StartGatherers < 0 || t.StartGatherers > MaxGatherers:
		return fmt.Errorf("tuning: start_gatherers must be in [0, %d], got %d", MaxGatherers, t.StartGatherers)
	}
	return nil
}
