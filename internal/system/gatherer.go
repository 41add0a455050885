// internal/system/gatherer.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
)

// GathererSystem — дроны собирают осколки и сдают энергию в ядро.
type GathererSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewGathererSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *GathererSystem {
	return &GathererSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Spawn adds a gatherer at the core unless the cap is reached.
func (s *GathererSystem) Spawn() (types.EntityID, bool) {
	if len(s.ecs.Gatherers) >= config.MaxGatherers {
		return 0, false
	}
	id := s.ecs.NewEntity()
	s.ecs.Gatherers[id] = &component.Gatherer{Capacity: config.GathererCapacity}
	return id, true
}

func (s *GathererSystem) Update() {
	for _, id := range entity.Sorted(s.ecs.Gatherers) {
		g := s.ecs.Gatherers[id]
		if g.Returning {
			s.returnHome(id, g)
			continue
		}
		s.collect(g)
	}
}

func (s *GathererSystem) returnHome(id types.EntityID, g *component.Gatherer) {
	g.Position = g.Position.Lerp(component.Position{}, config.GathererLerp)
	g.Altitude = utils.Lerp(g.Altitude, config.GathererHomeAltitude, config.GathererLerp)
	if dist3(g.Position, g.Altitude, component.Position{}, config.GathererHomeAltitude) >= config.GathererDepositRange {
		return
	}
	econ := s.ecs.Economy
	if !econ.Sandbox {
		econ.Energy += g.Storage
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type:  event.ShardsDeposited,
		Frame: s.ecs.Frame,
		Data:  map[string]any{"gatherer": id, "amount": g.Storage},
	})
	g.Storage = 0
	g.Returning = false
}

func (s *GathererSystem) collect(g *component.Gatherer) {
	if _, ok := s.ecs.Shards[g.TargetID]; !ok {
		g.TargetID = 0
		for _, sid := range entity.Sorted(s.ecs.Shards) {
			if shard := s.ecs.Shards[sid]; !shard.Claimed {
				shard.Claimed = true
				g.TargetID = sid
				break
			}
		}
	}

	shard, ok := s.ecs.Shards[g.TargetID]
	if !ok {
		if g.Storage > 0 {
			g.Returning = true
		}
		return
	}

	g.Position = g.Position.Lerp(shard.Position, config.GathererLerp)
	g.Altitude = utils.Lerp(g.Altitude, config.GathererHoverHeight, config.GathererLerp)
	if dist3(g.Position, g.Altitude, shard.Position, 0) < config.GathererCollectRange {
		g.Storage += shard.Value
		delete(s.ecs.Shards, g.TargetID)
		g.TargetID = 0
		if g.Storage >= g.Capacity {
			g.Returning = true
		}
	}
}

// dist3 measures between two points given as ground position plus height.
func dist3(a component.Position, ha float64, b component.Position, hb float64) float64 {
	d := a.Sub(b)
	dh := ha - hb
	return math.Sqrt(d.X*d.X + d.Z*d.Z + dh*dh)
}
