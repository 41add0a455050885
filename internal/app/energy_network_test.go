package app

import (
	"testing"

	"go-core-defense/internal/defs"
)

func TestConnectRejections(t *testing.T) {
	g := newTestGame(t, 1000)
	core := g.ECS.CoreID
	a := mustBuild(t, g, 30, 0, defs.TowerCannon)

	_, err := g.Connect(a, a)
	wantReason(t, err, ReasonSameNode)
	_, err = g.Connect(a, 999)
	wantReason(t, err, ReasonNodeNotFound)

	if _, err := g.Connect(core, a); err != nil {
		t.Fatal(err)
	}
	_, err = g.Connect(a, core)
	wantReason(t, err, ReasonConnectionExists)

	g.addObstacle(0, 20, 2)
	b := mustBuild(t, g, 0, 40, defs.TowerCannon)
	_, err = g.Connect(core, b)
	wantReason(t, err, ReasonPathBlocked)
}

func TestConnectUpdatesDistance(t *testing.T) {
	g := newTestGame(t, 1000)
	a := mustBuild(t, g, 30, 0, defs.TowerCannon)
	b := mustBuild(t, g, 40, 0, defs.TowerCannon)
	if g.ECS.Nodes[b].Reachable() {
		t.Fatal("unconnected tower reachable")
	}
	if _, err := g.Connect(g.ECS.CoreID, a); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect(a, b); err != nil {
		t.Fatal(err)
	}
	if d := g.ECS.Nodes[b].Distance; d != 2 {
		t.Fatalf("distance = %d, want 2", d)
	}

	if _, err := g.Sell(a); err != nil {
		t.Fatal(err)
	}
	if g.ECS.Nodes[b].Reachable() {
		t.Fatal("tower still reachable after its link was sold")
	}
}

func TestNodeAt(t *testing.T) {
	g := newTestGame(t, 1000)
	a := mustBuild(t, g, 30, 0, defs.TowerCannon)
	if id, ok := g.NodeAt(g.ECS.Nodes[a].Position.Add(g.ECS.Nodes[a].Position.Scale(0.01)), NodePickRadius); !ok || id != a {
		t.Fatalf("NodeAt = %d %v, want %d", id, ok, a)
	}
	if _, ok := g.NodeAt(g.ECS.Nodes[a].Position.Scale(0.5), NodePickRadius); ok {
		t.Fatal("NodeAt found a node on empty ground")
	}
}
