// internal/app/energy_network.go
package app

import (
	"errors"

	"go-core-defense/internal/entity"
	"go-core-defense/internal/system"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

// Connect links two nodes with an energy line.
func (g *Game) Connect(a, b types.EntityID) (types.EntityID, error) {
	id, err := g.NetworkSystem.AddConnection(a, b)
	switch {
	case err == nil:
		g.log.Debug("Connection added", "a", a, "b", b)
		return id, nil
	case errors.Is(err, system.ErrNodeNotFound):
		return 0, wrapReject(ReasonNodeNotFound, "unknown endpoint", err)
	case errors.Is(err, system.ErrSameNode):
		return 0, wrapReject(ReasonSameNode, "endpoints are the same node", err)
	case errors.Is(err, system.ErrConnectionExists):
		return 0, wrapReject(ReasonConnectionExists, "connection already exists", err)
	case errors.Is(err, system.ErrPathBlocked):
		return 0, wrapReject(ReasonPathBlocked, "obstacle blocks signal path", err)
	default:
		return 0, err
	}
}

// NodeAt returns the node closest to pos within radius.
func (g *Game) NodeAt(pos geom.Vec2, radius float64) (types.EntityID, bool) {
	best, bestDist := types.EntityID(0), radius
	for _, id := range entity.Sorted(g.ECS.Nodes) {
		if d := g.ECS.Nodes[id].Position.Dist(pos); d <= bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != 0
}
