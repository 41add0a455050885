package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-core-defense/internal/app"
	"go-core-defense/internal/defs"
	"go-core-defense/pkg/geom"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Width: 80, Height: 24, Scale: 1}
	x, y := v.ToCell(geom.V(10, 8))
	if x != 50 || y != 16 {
		t.Fatalf("ToCell = (%d, %d), want (50, 16)", x, y)
	}
	if p := v.ToWorld(x, y); p != geom.V(10, 8) {
		t.Fatalf("ToWorld = %+v", p)
	}
}

func TestRasterizeLayers(t *testing.T) {
	s := &app.Snapshot{
		Nodes: []app.NodeView{
			{ID: 1, Core: true},
			{ID: 2, Type: defs.TowerCannon, Position: geom.V(10, 0), Distance: 1},
			{ID: 3, Type: defs.TowerSniper, Position: geom.V(-10, 0), Distance: -1},
		},
		Connections: []app.ConnectionView{{ID: 4, A: 1, B: 2}},
		Enemies:     []app.EnemyView{{ID: 5, Position: geom.V(0, 10), Health: 1}},
	}
	v := Viewport{Width: 40, Height: 20, Scale: 1}
	grid := Rasterize(s, v, geom.V(0, -8))

	at := func(p geom.Vec2) Cell {
		x, y := v.ToCell(p)
		return grid[y][x]
	}
	if c := at(geom.Vec2{}); c.Rune != '@' || c.Kind != KindCore {
		t.Fatalf("core cell = %+v", c)
	}
	if c := at(geom.V(10, 0)); c.Rune != 'C' || c.Kind != KindTower {
		t.Fatalf("cannon cell = %+v", c)
	}
	if c := at(geom.V(-10, 0)); c.Kind != KindTowerOffline {
		t.Fatalf("offline sniper cell = %+v", c)
	}
	if c := at(geom.V(5, 0)); c.Kind != KindLink {
		t.Fatalf("link cell = %+v", c)
	}
	if c := at(geom.V(0, 10)); c.Kind != KindEnemy {
		t.Fatalf("enemy cell = %+v", c)
	}
	if c := at(geom.V(0, -8)); c.Kind != KindCursor {
		t.Fatalf("cursor cell = %+v", c)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	s := &app.Snapshot{Energy: 300, Health: 100, Nodes: []app.NodeView{{ID: 1, Core: true}}}
	v := Viewport{Width: 40, Height: 10, Scale: 1}
	Draw(screen, s, v, geom.V(5, 0), "ready")

	if r, _, _, _ := screen.GetContent(20, 5); r != '@' {
		t.Fatalf("center rune = %q, want '@'", r)
	}
	if r, _, _, _ := screen.GetContent(0, 10); r != 'E' {
		t.Fatalf("hud starts with %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 11); r != 'r' {
		t.Fatalf("status starts with %q", r)
	}
}
