// internal/system/combat.go
package system

import (
	"log/slog"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// CombatSystem ведёт все башни: перезарядку, наведение, стрельбу и цикл шахты.
type CombatSystem struct {
	ecs             *entity.ECS
	network         *NetworkSystem
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             *slog.Logger
}

func NewCombatSystem(ecs *entity.ECS, network *NetworkSystem, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		network:         network,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             slog.With("component", "combat"),
	}
}

func (s *CombatSystem) Update(frame int64) {
	for _, id := range entity.Sorted(s.ecs.Towers) {
		s.advance(id, frame)
	}
}

// advance runs one tick of a single tower.
func (s *CombatSystem) advance(id types.EntityID, frame int64) {
	tower := s.ecs.Towers[id]
	node := s.ecs.Nodes[id]
	if tower == nil || node == nil {
		return
	}
	switch tower.Behavior {
	case defs.BehaviorSilo:
		s.advanceSilo(id, tower, node, frame)
	case defs.BehaviorStandard, defs.BehaviorRapid, defs.BehaviorSalvo:
		s.advanceWeapon(id, tower, node, frame)
	default:
		s.log.Warn("tower with unknown behavior", "id", id, "behavior", tower.Behavior)
	}
}

func (s *CombatSystem) advanceWeapon(id types.EntityID, tower *component.Tower, node *component.Node, frame int64) {
	if tower.Cooldown > 0 {
		tower.Cooldown--
	}

	if q := tower.Rocket; q != nil && len(q.Shots) > 0 && frame%config.RocketSalvoInterval == 0 {
		shot := q.Shots[0]
		q.Shots = q.Shots[1:]
		if _, alive := s.ecs.LiveEnemy(shot.TargetID); alive {
			spawnProjectile(s.ecs, node.Position, tower, shot.TargetID, shot.Damage, config.ProjectileSpeed)
		}
	}

	if node.Storage >= config.PacketAmount && frame%config.TowerDispatchInterval == 0 {
		s.network.Dispatch(id, config.PacketAmount, true)
	}

	target := s.acquireTarget(tower, node)
	if target == 0 || node.Storage < 1 || tower.Cooldown > 0 {
		return
	}

	switch {
	case tower.Behavior == defs.BehaviorSalvo:
		perShot := tower.Damage / config.RocketSalvoSize
		for k := 0; k < config.RocketSalvoSize; k++ {
			tower.Rocket.Shots = append(tower.Rocket.Shots, component.QueuedShot{TargetID: target, Damage: perShot})
		}
		tower.Cooldown = tower.MaxCooldown
	case tower.RapidFire(node):
		spawnProjectile(s.ecs, node.Position, tower, target, tower.Damage, config.ProjectileSpeed)
		tower.Cooldown = config.RifleRapidFireCooldown
	default:
		spawnProjectile(s.ecs, node.Position, tower, target, tower.Damage, config.ProjectileSpeed)
		tower.Cooldown = tower.MaxCooldown
	}
	node.Storage--
}

// acquireTarget keeps the current target while it is alive and in range,
// otherwise takes the first enemy in spawn order that is within range.
func (s *CombatSystem) acquireTarget(tower *component.Tower, node *component.Node) types.EntityID {
	if e, ok := s.ecs.LiveEnemy(tower.TargetID); ok && node.Position.Dist(e.Position) <= tower.Range {
		return tower.TargetID
	}
	tower.TargetID = 0
	for _, eid := range liveEnemies(s.ecs) {
		if node.Position.Dist(s.ecs.Enemies[eid].Position) < tower.Range {
			tower.TargetID = eid
			break
		}
	}
	return tower.TargetID
}
