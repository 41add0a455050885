// internal/system/utils.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
)

// ApplyDamage снимает здоровье с врага. Смерть фиксирует MovementSystem.
func ApplyDamage(enemy *component.Enemy, damage float64) {
	if damage <= 0 {
		return
	}
	enemy.Health -= damage
}

// spawnProjectile создаёт снаряд, летящий в указанного врага.
func spawnProjectile(ecs *entity.ECS, from component.Position, tower *component.Tower, target types.EntityID, damage, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = &component.Projectile{
		Position: from,
		TargetID: target,
		Damage:   damage,
		Speed:    speed,
		AoE:      tower.AoE,
		Kind:     tower.Projectile,
		Source:   tower.Type,
	}
	return id
}

// liveEnemies returns live enemy IDs in spawn order.
func liveEnemies(ecs *entity.ECS) []types.EntityID {
	ids := entity.Sorted(ecs.Enemies)
	out := ids[:0]
	for _, id := range ids {
		if !ecs.Enemies[id].Dead {
			out = append(out, id)
		}
	}
	return out
}
