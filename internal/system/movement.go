// internal/system/movement.go
package system

import (
	"log/slog"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
)

// MovementSystem ведёт врагов к ядру и убирает погибших.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update() {
	econ := s.ecs.Economy
	for _, id := range entity.Sorted(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]

		steering := e.Position.Scale(-1).Normalize().Scale(config.EnemyAcceleration)
		e.Velocity = e.Velocity.Add(steering).ClampLen(config.EnemyMaxSpeed)
		e.Position = e.Position.Add(e.Velocity)

		if e.Position.Len() < config.CoreContactRadius {
			econ.Health -= config.CoreContactDamage
			e.Dead = true
			slog.Debug("Enemy reached core", "enemy", id, "health", econ.Health)
			s.eventDispatcher.Dispatch(event.Event{
				Type:  event.EnemyReachedCore,
				Frame: s.ecs.Frame,
				Data:  map[string]any{"enemy": id, "health": econ.Health},
			})
		}
		if e.Health <= 0 {
			e.Dead = true
			s.ecs.Shards[s.ecs.NewEntity()] = &component.Shard{
				Position: e.Position,
				Value:    config.ShardValue,
			}
			s.eventDispatcher.Dispatch(event.Event{
				Type:  event.EnemyKilled,
				Frame: s.ecs.Frame,
				Data:  map[string]any{"enemy": id},
			})
		}
		if e.Dead {
			delete(s.ecs.Enemies, id)
		}
	}

	if econ.Health <= 0 && !econ.GameOver {
		econ.GameOver = true
		slog.Info("Core destroyed", "frame", s.ecs.Frame, "wave", s.ecs.Wave.Number)
		s.eventDispatcher.Dispatch(event.Event{
			Type:  event.GameOver,
			Frame: s.ecs.Frame,
			Data:  map[string]any{"wave": s.ecs.Wave.Number},
		})
	}
}
