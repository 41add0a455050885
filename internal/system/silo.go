// internal/system/silo.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
)

// advanceSilo runs the silo cycle. The stages are checked one after another,
// so a transition can carry into the next stage within the same tick.
func (s *CombatSystem) advanceSilo(id types.EntityID, tower *component.Tower, node *component.Node, frame int64) {
	silo := tower.Silo
	if silo == nil {
		silo = &component.SiloState{State: component.SiloWaiting}
		tower.Silo = silo
	}

	if silo.State == component.SiloWaiting {
		if tower.Cooldown > 0 {
			tower.Cooldown--
		} else if node.Storage >= 1 && len(s.ecs.Enemies) > 0 {
			silo.State = component.SiloOpening
			silo.DoorTicks = 0
		}
	}

	if silo.State == component.SiloOpening {
		silo.DoorTicks++
		if silo.DoorTicks >= config.SiloDoorTicks {
			silo.DoorTicks = config.SiloDoorTicks
			silo.State = component.SiloFiring
			silo.ShotsFired = 0
		}
	}

	if silo.State == component.SiloFiring && frame%config.SiloShotInterval == 0 {
		if targets := liveEnemies(s.ecs); len(targets) > 0 {
			target := targets[s.rng.Intn(len(targets))]
			spawnProjectile(s.ecs, node.Position, tower, target, tower.Damage, config.SiloProjectileSpeed)
		}
		silo.ShotsFired++
		if silo.ShotsFired >= config.SiloShotsPerCycle {
			silo.State = component.SiloClosing
			silo.DoorTicks = config.SiloDoorTicks
			node.Storage = max(0, node.Storage-1)
			tower.Cooldown = tower.MaxCooldown
			s.eventDispatcher.Dispatch(event.Event{
				Type:  event.SiloLaunched,
				Frame: frame,
				Data:  map[string]any{"silo": id},
			})
		}
	}

	if silo.State == component.SiloClosing {
		silo.DoorTicks--
		if silo.DoorTicks <= 0 {
			silo.DoorTicks = 0
			silo.State = component.SiloWaiting
		}
	}
}
