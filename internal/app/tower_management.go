// internal/app/tower_management.go
package app

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

// CheckPlacement returns the first reason a tower cannot stand at pos, or nil.
func (g *Game) CheckPlacement(pos geom.Vec2) error {
	if pos.Len() < config.CoreExclusionRadius {
		return rejectf(ReasonTooCloseToCore, "too close to core")
	}
	for _, id := range entity.Sorted(g.ECS.Obstacles) {
		o := g.ECS.Obstacles[id]
		if pos.Dist(o.Position) < o.Radius+config.ObstacleClearance {
			return rejectf(ReasonObstruction, "obstruction detected")
		}
	}
	for _, id := range entity.Sorted(g.ECS.Towers) {
		if pos.Dist(g.ECS.Nodes[id].Position) < config.TowerSpacing {
			return rejectf(ReasonSpaceOccupied, "space occupied")
		}
	}
	return nil
}

// TowerCost is the current price of a tower type. Ramp-priced types use the
// running silo price.
func (g *Game) TowerCost(t defs.TowerType) (int, bool) {
	def, ok := g.TowerDefs[t]
	if !ok {
		return 0, false
	}
	if def.RampPrice {
		return g.ECS.Economy.SiloPrice, true
	}
	return def.Cost, true
}

// Build places a tower of type t at (x, z).
func (g *Game) Build(x, z float64, t defs.TowerType) (types.EntityID, error) {
	def, ok := g.TowerDefs[t]
	if !ok {
		return 0, rejectf(ReasonUnknownTowerType, "unknown tower type %q", t)
	}
	pos := geom.V(x, z)
	if err := g.CheckPlacement(pos); err != nil {
		return 0, err
	}
	cost, _ := g.TowerCost(t)
	if !g.canAfford(cost) {
		return 0, rejectf(ReasonInsufficientEnergy, "need %d energy, have %d", cost, g.ECS.Economy.Energy)
	}

	g.spend(cost)
	if def.RampPrice {
		g.ECS.Economy.SiloPrice = int(math.Floor(float64(g.ECS.Economy.SiloPrice) * config.SiloPriceGrowth))
	}

	tower, node := component.NewTower(def, pos)
	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = tower
	g.ECS.Nodes[id] = node

	g.log.Info("Tower built", "id", id, "type", t, "x", x, "z", z, "cost", cost)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.TowerBuilt,
		Frame: g.ECS.Frame,
		Data:  map[string]any{"id": id, "type": t, "x": x, "z": z, "cost": cost},
	})
	return id, nil
}

// Sell removes a tower, refunds half its base cost and detaches it from the network.
func (g *Game) Sell(id types.EntityID) (int, error) {
	if id == g.ECS.CoreID {
		return 0, rejectf(ReasonCannotSellCore, "the core cannot be sold")
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, rejectf(ReasonNodeNotFound, "no tower %d", id)
	}

	refund := 0
	if !g.ECS.Economy.Sandbox {
		refund = tower.SellRefund()
		g.ECS.Economy.Energy += refund
	}
	g.deleteTowerEntity(id)
	if g.interaction.Selected == id {
		g.interaction.Selected = 0
	}

	g.log.Info("Tower sold", "id", id, "type", tower.Type, "refund", refund)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.TowerSold,
		Frame: g.ECS.Frame,
		Data:  map[string]any{"id": id, "type": tower.Type, "refund": refund},
	})
	return refund, nil
}

func (g *Game) deleteTowerEntity(id types.EntityID) {
	g.NetworkSystem.RemoveConnectionsOf(id)
	g.ECS.RemoveTower(id)
	g.NetworkSystem.RecomputeDistances()
}

// UpgradeCost returns what upgrading the node would cost.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	if id == g.ECS.CoreID {
		return g.ECS.Core.UpgradeCost, true
	}
	if t, ok := g.ECS.Towers[id]; ok {
		return t.UpgradeCost, true
	}
	return 0, false
}

// Upgrade raises the core or a tower one level.
func (g *Game) Upgrade(id types.EntityID) error {
	cost, ok := g.UpgradeCost(id)
	if !ok {
		return rejectf(ReasonNodeNotFound, "no node %d", id)
	}
	if !g.canAfford(cost) {
		return rejectf(ReasonInsufficientEnergy, "need %d energy, have %d", cost, g.ECS.Economy.Energy)
	}
	g.spend(cost)

	node := g.ECS.Nodes[id]
	if id == g.ECS.CoreID {
		g.ECS.Core.Upgrade(node)
		g.GathererSystem.Spawn()
	} else {
		g.ECS.Towers[id].Upgrade(node)
	}

	g.log.Info("Node upgraded", "id", id, "level", node.Level, "cost", cost)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.NodeUpgraded,
		Frame: g.ECS.Frame,
		Data:  map[string]any{"id": id, "level": node.Level, "cost": cost},
	})
	return nil
}
