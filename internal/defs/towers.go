// internal/defs/towers.go
package defs

import "fmt"

// TowerType — вид оружейного узла.
type TowerType string

const (
	TowerRifle  TowerType = "RIFLE"
	TowerCannon TowerType = "CANNON"
	TowerRocket TowerType = "ROCKET"
	TowerSniper TowerType = "SNIPER"
	TowerSilo   TowerType = "SILO"
)

// TowerOrder is the toolbar / hotkey order.
var TowerOrder = []TowerType{TowerRifle, TowerCannon, TowerRocket, TowerSniper, TowerSilo}

// Behavior selects the per-tick routine a tower runs.
type Behavior string

const (
	BehaviorStandard Behavior = "STANDARD" // один снаряд за выстрел
	BehaviorRapid    Behavior = "RAPID"    // как STANDARD, но с ускорением на максимальном уровне
	BehaviorSalvo    Behavior = "SALVO"    // очередь из нескольких ракет
	BehaviorSilo     Behavior = "SILO"     // цикл шахты
)

// ProjectileKind is cosmetic; presenters pick a shape from it.
type ProjectileKind string

const (
	ProjectileSphere  ProjectileKind = "sphere"
	ProjectileCube    ProjectileKind = "cube"
	ProjectileRocket  ProjectileKind = "rocket"
	ProjectileMissile ProjectileKind = "missile"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type       TowerType      `json:"type"`
	Name       string         `json:"name"`
	Cost       int            `json:"cost"`
	Range      float64        `json:"range"`
	MaxRange   float64        `json:"max_range"`
	Damage     float64        `json:"damage"`
	Cooldown   int            `json:"cooldown"` // тиков между выстрелами
	Capacity   int            `json:"capacity"`
	AoE        float64        `json:"aoe"`
	Projectile ProjectileKind `json:"projectile"`
	Behavior   Behavior       `json:"behavior"`
	RampPrice  bool           `json:"ramp_price,omitempty"` // цена растёт после каждой покупки
}

// TowerDefs is the active tower table. LoadTowerDefinitions replaces it.
var TowerDefs = DefaultTowerDefs()

func DefaultTowerDefs() map[TowerType]TowerDefinition {
	return map[TowerType]TowerDefinition{
		TowerRifle: {
			Type: TowerRifle, Name: "Rifle", Cost: 50, Range: 18, MaxRange: 25,
			Damage: 4, Cooldown: 30, Capacity: 10,
			Projectile: ProjectileSphere, Behavior: BehaviorRapid,
		},
		TowerCannon: {
			Type: TowerCannon, Name: "Cannon", Cost: 100, Range: 12, MaxRange: 18,
			Damage: 18, Cooldown: 80, Capacity: 8, AoE: 5,
			Projectile: ProjectileCube, Behavior: BehaviorStandard,
		},
		TowerRocket: {
			Type: TowerRocket, Name: "Rocket", Cost: 180, Range: 16, MaxRange: 28,
			Damage: 40, Cooldown: 140, Capacity: 5, AoE: 4,
			Projectile: ProjectileRocket, Behavior: BehaviorSalvo,
		},
		TowerSniper: {
			Type: TowerSniper, Name: "Sniper", Cost: 350, Range: 45, MaxRange: 80,
			Damage: 75, Cooldown: 150, Capacity: 3,
			Projectile: ProjectileSphere, Behavior: BehaviorStandard,
		},
		TowerSilo: {
			Type: TowerSilo, Name: "Silo", Cost: 1000, Range: 100, MaxRange: 150,
			Damage: 150, Cooldown: 3600, Capacity: 1, AoE: 12,
			Projectile: ProjectileMissile, Behavior: BehaviorSilo, RampPrice: true,
		},
	}
}

// Validate checks a definition for values the simulation cannot run with.
func (d TowerDefinition) Validate() error {
	switch {
	case d.Type == "":
		return fmt.Errorf("tower definition without type")
	case d.Cost <= 0:
		return fmt.Errorf("tower %s: cost must be > 0", d.Type)
	case d.Capacity <= 0:
		return fmt.Errorf("tower %s: capacity must be > 0", d.Type)
	case d.Range <= 0 || d.MaxRange < d.Range:
		return fmt.Errorf("tower %s: need 0 < range <= max_range", d.Type)
	case d.Cooldown < 0 || d.AoE < 0 || d.Damage < 0:
		return fmt.Errorf("tower %s: negative combat stat", d.Type)
	}
	switch d.Behavior {
	case BehaviorStandard, BehaviorRapid, BehaviorSalvo, BehaviorSilo:
	default:
		return fmt.Errorf("tower %s: unknown behavior %q", d.Type, d.Behavior)
	}
	return nil
}
