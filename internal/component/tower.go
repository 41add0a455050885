// internal/component/tower.go
package component

import (
	"math"

	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

// Tower — оружейный узел. Вариантные данные лежат в Rocket или Silo.
type Tower struct {
	Type        defs.TowerType
	Behavior    defs.Behavior
	Projectile  defs.ProjectileKind
	BaseCost    int
	Range       float64
	MaxRange    float64
	Damage      float64
	MaxCooldown float64
	Cooldown    float64
	AoE         float64
	UpgradeCost int
	TargetID    types.EntityID // 0 — цели нет; проверять живость при каждом обращении

	Rocket *RocketQueue
	Silo   *SiloState
}

// RocketQueue — отложенные суб-выстрелы залпа.
type RocketQueue struct {
	Shots []QueuedShot
}

// QueuedShot фиксирует урон на момент постановки в очередь.
type QueuedShot struct {
	TargetID types.EntityID
	Damage   float64
}

// NewTower builds the tower and its node from a definition.
func NewTower(def defs.TowerDefinition, pos Position) (*Tower, *Node) {
	t := &Tower{
		Type:        def.Type,
		Behavior:    def.Behavior,
		Projectile:  def.Projectile,
		BaseCost:    def.Cost,
		Range:       def.Range,
		MaxRange:    def.MaxRange,
		Damage:      def.Damage,
		MaxCooldown: float64(def.Cooldown),
		AoE:         def.AoE,
		UpgradeCost: int(math.Floor(float64(def.Cost) * config.TowerUpgradeCostFactor)),
	}
	switch def.Behavior {
	case defs.BehaviorSalvo:
		t.Rocket = &RocketQueue{}
	case defs.BehaviorSilo:
		t.Silo = &SiloState{State: SiloWaiting}
	}
	n := &Node{
		Position: pos,
		Level:    1,
		Capacity: def.Capacity,
		Distance: Unreachable,
	}
	return t, n
}

// Upgrade raises the tower one level. The caller handles payment.
func (t *Tower) Upgrade(node *Node) {
	node.Level++
	t.Damage *= config.TowerDamageGrowth
	if t.Range < t.MaxRange {
		t.Range = math.Min(t.MaxRange, t.Range*config.TowerRangeGrowth)
	}
	t.MaxCooldown *= config.TowerCooldownGrowth
	t.UpgradeCost = int(math.Floor(float64(t.UpgradeCost) * config.TowerUpgradeCostGrowth))
}

// RapidFire reports whether a rifle has reached its top fire mode.
func (t *Tower) RapidFire(node *Node) bool {
	return t.Behavior == defs.BehaviorRapid && node.Level >= config.RifleRapidFireLevel
}

// SellRefund is what selling returns outside sandbox.
func (t *Tower) SellRefund() int {
	return int(math.Floor(float64(t.BaseCost) * config.SellRefundFactor))
}
