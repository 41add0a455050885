// internal/app/terrain.go
package app

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/pkg/geom"
)

// generateObstacles scatters trees and rocks on a ring around the core.
// Attempts landing too close to an earlier obstacle are dropped, so the
// final count is usually below the number of attempts.
func (g *Game) generateObstacles() {
	placed := make([]geom.Vec2, 0, g.Tuning.ObstacleCount)

	for i := 0; i < g.Tuning.ObstacleCount; i++ {
		angle := g.Rng.Angle()
		dist := g.Rng.Range(config.ObstacleMinDistance, config.ObstacleMaxDistance)
		pos := geom.FromAngle(angle, dist)

		tooClose := false
		for _, p := range placed {
			if p.Dist(pos) < config.ObstacleMinSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		obs := &component.Obstacle{Position: pos}
		if g.Rng.Float64() < config.ObstacleTreeChance {
			obs.Kind = component.ObstacleTree
			obs.Radius = g.Rng.Range(config.TreeMinScale, config.TreeMaxScale)
		} else {
			obs.Kind = component.ObstacleRock
			obs.Radius = g.Rng.Range(config.RockMinScale, config.RockMaxScale) * config.RockRadiusFactor
		}
		g.ECS.Obstacles[g.ECS.NewEntity()] = obs
		placed = append(placed, pos)
	}
}
