package app

import (
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

// newTestGame returns a game on an empty field with the given energy.
func newTestGame(t *testing.T, energy int) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	tuning.ObstacleCount = 0
	tuning.InitialEnergy = energy
	return NewGame(tuning)
}

func (g *Game) addObstacle(x, z, r float64) {
	g.ECS.Obstacles[g.ECS.NewEntity()] = &component.Obstacle{
		Position: geom.V(x, z), Radius: r, Kind: component.ObstacleRock,
	}
}

func mustBuild(t *testing.T, g *Game, x, z float64, tt defs.TowerType) types.EntityID {
	t.Helper()
	id, err := g.Build(x, z, tt)
	if err != nil {
		t.Fatalf("Build(%v, %v, %s): %v", x, z, tt, err)
	}
	return id
}

func wantReason(t *testing.T, err error, want Reason) {
	t.Helper()
	if got := ReasonOf(err); got != want {
		t.Fatalf("reason = %q (err %v), want %q", got, err, want)
	}
}
