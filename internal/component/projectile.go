// internal/component/projectile.go
package component

import (
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

type Projectile struct {
	Position Position
	TargetID types.EntityID
	Damage   float64
	Speed    float64
	AoE      float64
	Kind     defs.ProjectileKind
	Source   defs.TowerType
}
