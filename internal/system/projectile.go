// internal/system/projectile.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for _, id := range entity.Sorted(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		target, alive := s.ecs.LiveEnemy(proj.TargetID)
		if !alive {
			// Цель пропала, снаряд исчезает без эффекта
			delete(s.ecs.Projectiles, id)
			continue
		}

		dir := target.Position.Sub(proj.Position).Normalize()
		proj.Position = proj.Position.Add(dir.Scale(proj.Speed))
		if proj.Position.Dist(target.Position) < config.ProjectileHitRadius {
			s.hitTarget(proj, target)
			delete(s.ecs.Projectiles, id)
		}
	}
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) {
	if proj.AoE <= 0 {
		ApplyDamage(target, proj.Damage)
		return
	}
	for _, eid := range liveEnemies(s.ecs) {
		e := s.ecs.Enemies[eid]
		dist := e.Position.Dist(proj.Position)
		if dist <= proj.AoE {
			ApplyDamage(e, AoEDamage(proj.Damage, dist, proj.AoE))
		}
	}
	s.ecs.Explosions[s.ecs.NewEntity()] = &component.Explosion{
		Position:    proj.Position,
		Radius:      proj.AoE * config.ExplosionStartScale,
		Opacity:     0.5,
		StepsLeft:   config.ExplosionSteps,
		TicksToStep: config.ExplosionStepTicks,
	}
}

// AoEDamage scales damage linearly down to 70% at the edge of the radius.
func AoEDamage(damage, dist, radius float64) float64 {
	return damage * (1 - (dist/radius)*config.AoEFalloff)
}
