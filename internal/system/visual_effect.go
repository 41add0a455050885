// internal/system/visual_effect.go
package system

import (
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
)

// VisualEffectSystem ведёт косметические эффекты. На симуляцию не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update() {
	for id, ex := range s.ecs.Explosions {
		ex.TicksToStep--
		if ex.TicksToStep > 0 {
			continue
		}
		ex.TicksToStep = config.ExplosionStepTicks
		ex.Radius *= config.ExplosionGrowth
		ex.Opacity *= config.ExplosionFade
		ex.StepsLeft--
		if ex.StepsLeft <= 0 {
			delete(s.ecs.Explosions, id)
		}
	}
}
