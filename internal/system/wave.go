// internal/system/wave.go
package system

import (
	"errors"
	"log/slog"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/utils"
	"go-core-defense/pkg/geom"
)

var ErrWaveActive = errors.New("wave already in progress")

type WaveSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	reward          int
	log             *slog.Logger
}

func NewWaveSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, reward int) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		reward:          reward,
		log:             slog.With("component", "wave"),
	}
}

// StartWave arms the next wave. Enemies appear from the next tick on.
func (s *WaveSystem) StartWave() error {
	wave := s.ecs.Wave
	if wave.Active {
		return ErrWaveActive
	}
	wave.Number++
	wave.Total = defs.EnemyCountForWave(wave.Number)
	wave.EnemiesToSpawn = wave.Total
	wave.SpawnTimer = 0
	wave.Active = true

	s.log.Info("Wave started", "wave", wave.Number, "enemies", wave.Total)
	s.eventDispatcher.Dispatch(event.Event{
		Type:  event.WaveStarted,
		Frame: s.ecs.Frame,
		Data:  map[string]any{"wave": wave.Number, "enemies": wave.Total},
	})
	return nil
}

func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	if !wave.Active {
		return
	}

	wave.SpawnTimer--
	if wave.SpawnTimer <= 0 && wave.EnemiesToSpawn > 0 {
		s.spawnEnemy(wave)
		wave.EnemiesToSpawn--
		wave.SpawnTimer = config.SpawnInterval
	}

	if wave.EnemiesToSpawn == 0 && len(s.ecs.Enemies) == 0 {
		wave.Active = false
		econ := s.ecs.Economy
		if !econ.Sandbox {
			econ.Energy += s.reward
		}
		s.log.Info("Wave cleared", "wave", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{
			Type:  event.WaveCleared,
			Frame: s.ecs.Frame,
			Data:  map[string]any{"wave": wave.Number},
		})
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	hp := defs.EnemyHealthForWave(wave.Number)
	id := s.ecs.NewEntity()
	s.ecs.Enemies[id] = &component.Enemy{
		Position:  geom.FromAngle(s.rng.Angle(), config.SpawnRadius),
		Health:    hp,
		MaxHealth: hp,
	}
}
