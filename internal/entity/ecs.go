// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-core-defense/internal/component"
	"go-core-defense/internal/types"
)

// ECS — единственный агрегат состояния симуляции.
type ECS struct {
	Frame       int64
	NextID      types.EntityID
	CoreID      types.EntityID
	Core        *component.Core
	Nodes       map[types.EntityID]*component.Node
	Towers      map[types.EntityID]*component.Tower
	Connections map[types.EntityID]*component.Connection
	Packets     map[types.EntityID]*component.Packet
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Shards      map[types.EntityID]*component.Shard
	Gatherers   map[types.EntityID]*component.Gatherer
	Obstacles   map[types.EntityID]*component.Obstacle
	Explosions  map[types.EntityID]*component.Explosion
	Wave        *component.Wave
	Economy     *component.Economy
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Nodes:       make(map[types.EntityID]*component.Node),
		Towers:      make(map[types.EntityID]*component.Tower),
		Connections: make(map[types.EntityID]*component.Connection),
		Packets:     make(map[types.EntityID]*component.Packet),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Shards:      make(map[types.EntityID]*component.Shard),
		Gatherers:   make(map[types.EntityID]*component.Gatherer),
		Obstacles:   make(map[types.EntityID]*component.Obstacle),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Sorted returns the keys of m in creation order. Systems iterate through it
// so that a seeded run is reproducible.
func Sorted[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}

// LiveEnemy resolves a weak enemy reference.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	if id == 0 {
		return nil, false
	}
	e, ok := ecs.Enemies[id]
	if !ok || e.Dead {
		return nil, false
	}
	return e, true
}

// CoreNode returns the core's node component.
func (ecs *ECS) CoreNode() *component.Node {
	return ecs.Nodes[ecs.CoreID]
}

// AddCore creates the core entity at the origin.
func (ecs *ECS) AddCore(capacity int) types.EntityID {
	id := ecs.NewEntity()
	ecs.CoreID = id
	ecs.Core = component.NewCore()
	ecs.Nodes[id] = &component.Node{
		Level:    1,
		Capacity: capacity,
		Distance: 0,
		IsCore:   true,
	}
	return id
}

// RemoveTower deletes the tower components. Network edges are the caller's job.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	delete(ecs.Towers, id)
	delete(ecs.Nodes, id)
}
