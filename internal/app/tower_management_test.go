package app

import (
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/defs"
)

func TestBuildPlacementReasons(t *testing.T) {
	g := newTestGame(t, 1000)
	g.addObstacle(20, 0, 1)

	_, err := g.Build(5, 0, defs.TowerCannon)
	wantReason(t, err, ReasonTooCloseToCore)

	_, err = g.Build(21.5, 0, defs.TowerCannon)
	wantReason(t, err, ReasonObstruction)

	mustBuild(t, g, 30, 0, defs.TowerCannon)
	_, err = g.Build(31, 0, defs.TowerCannon)
	wantReason(t, err, ReasonSpaceOccupied)

	_, err = g.Build(40, 0, "LASER")
	wantReason(t, err, ReasonUnknownTowerType)

	if n := len(g.ECS.Towers); n != 1 {
		t.Fatalf("towers = %d, want 1", n)
	}
}

func TestBuildChargesCost(t *testing.T) {
	g := newTestGame(t, 300)
	mustBuild(t, g, 30, 0, defs.TowerCannon)
	if g.ECS.Economy.Energy != 200 {
		t.Fatalf("energy = %d, want 200", g.ECS.Economy.Energy)
	}

	_, err := g.Build(0, 30, defs.TowerSniper)
	wantReason(t, err, ReasonInsufficientEnergy)
	if g.ECS.Economy.Energy != 200 || len(g.ECS.Towers) != 1 {
		t.Fatalf("rejected build changed state: energy %d, towers %d", g.ECS.Economy.Energy, len(g.ECS.Towers))
	}
}

func TestSiloPriceRamp(t *testing.T) {
	g := newTestGame(t, 5000)
	mustBuild(t, g, 30, 0, defs.TowerSilo)
	if g.ECS.Economy.Energy != 4000 || g.ECS.Economy.SiloPrice != 1500 {
		t.Fatalf("after first silo: energy %d price %d", g.ECS.Economy.Energy, g.ECS.Economy.SiloPrice)
	}
	mustBuild(t, g, 0, 30, defs.TowerSilo)
	if g.ECS.Economy.Energy != 2500 || g.ECS.Economy.SiloPrice != 2250 {
		t.Fatalf("after second silo: energy %d price %d", g.ECS.Economy.Energy, g.ECS.Economy.SiloPrice)
	}
	if cost, _ := g.TowerCost(defs.TowerSilo); cost != 2250 {
		t.Fatalf("TowerCost(SILO) = %d, want 2250", cost)
	}
}

func TestSellRefundsHalf(t *testing.T) {
	g := newTestGame(t, 300)
	id := mustBuild(t, g, 30, 0, defs.TowerCannon)
	far := mustBuild(t, g, 50, 0, defs.TowerRifle)
	if _, err := g.Connect(g.ECS.CoreID, id); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect(id, far); err != nil {
		t.Fatal(err)
	}

	// один пакет летит в башню, второй из неё
	g.ECS.Nodes[g.ECS.CoreID].Storage = 5
	g.ECS.Nodes[id].Storage = 1
	if !g.NetworkSystem.Dispatch(g.ECS.CoreID, 1, false) {
		t.Fatal("core did not dispatch into the tower")
	}
	if !g.NetworkSystem.Dispatch(id, 1, true) {
		t.Fatal("tower did not dispatch downstream")
	}
	if len(g.ECS.Packets) != 2 {
		t.Fatalf("packets = %d, want 2", len(g.ECS.Packets))
	}

	refund, err := g.Sell(id)
	if err != nil {
		t.Fatal(err)
	}
	if refund != 50 || g.ECS.Economy.Energy != 200 {
		t.Fatalf("refund %d energy %d, want 50 and 200", refund, g.ECS.Economy.Energy)
	}
	if len(g.ECS.Connections) != 0 || len(g.ECS.Nodes) != 2 {
		t.Fatalf("sold tower left connections=%d nodes=%d", len(g.ECS.Connections), len(g.ECS.Nodes))
	}
	if len(g.ECS.Packets) != 0 {
		t.Fatalf("packets touching the sold tower survived: %d", len(g.ECS.Packets))
	}
	if in := g.NetworkSystem.Incoming(far); in != 0 {
		t.Fatalf("Incoming(far) = %d, want 0", in)
	}
	if n := g.ECS.Nodes[far]; n.Distance != component.Unreachable {
		t.Fatalf("far node distance = %d, want unreachable", n.Distance)
	}

	_, err = g.Sell(g.ECS.CoreID)
	wantReason(t, err, ReasonCannotSellCore)
	_, err = g.Sell(id)
	wantReason(t, err, ReasonNodeNotFound)
}

func TestSellInSandboxRefundsNothing(t *testing.T) {
	g := newTestGame(t, 300)
	g.ToggleSandbox()
	id := mustBuild(t, g, 30, 0, defs.TowerCannon)
	refund, err := g.Sell(id)
	if err != nil {
		t.Fatal(err)
	}
	if refund != 0 || g.ECS.Economy.Energy != g.Tuning.SandboxEnergy {
		t.Fatalf("refund %d energy %d", refund, g.ECS.Economy.Energy)
	}
}

func TestSandboxRoundTrip(t *testing.T) {
	g := newTestGame(t, 300)
	if !g.ToggleSandbox() {
		t.Fatal("sandbox not enabled")
	}
	if g.ECS.Economy.Energy != 99999 {
		t.Fatalf("sandbox energy = %d", g.ECS.Economy.Energy)
	}
	mustBuild(t, g, 30, 0, defs.TowerSniper)
	mustBuild(t, g, 0, 30, defs.TowerSilo)
	if g.ECS.Economy.Energy != 99999 {
		t.Fatalf("sandbox build spent energy: %d", g.ECS.Economy.Energy)
	}
	if g.ToggleSandbox() {
		t.Fatal("sandbox not disabled")
	}
	if g.ECS.Economy.Energy != 300 {
		t.Fatalf("energy after sandbox = %d, want 300", g.ECS.Economy.Energy)
	}
}

func TestUpgradeCoreSpawnsGatherer(t *testing.T) {
	g := newTestGame(t, 300)
	before := len(g.ECS.Gatherers)
	cost, _ := g.UpgradeCost(g.ECS.CoreID)

	if err := g.Upgrade(g.ECS.CoreID); err != nil {
		t.Fatal(err)
	}
	if g.ECS.CoreNode().Level != 2 {
		t.Fatalf("core level = %d", g.ECS.CoreNode().Level)
	}
	if got := len(g.ECS.Gatherers); got != before+1 {
		t.Fatalf("gatherers = %d, want %d", got, before+1)
	}
	if g.ECS.Economy.Energy != 300-cost {
		t.Fatalf("energy = %d, want %d", g.ECS.Economy.Energy, 300-cost)
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newTestGame(t, 1000)
	id := mustBuild(t, g, 30, 0, defs.TowerCannon)
	tower := g.ECS.Towers[id]
	damage := tower.Damage

	if err := g.Upgrade(id); err != nil {
		t.Fatal(err)
	}
	if g.ECS.Nodes[id].Level != 2 || tower.Damage <= damage {
		t.Fatalf("level %d damage %v", g.ECS.Nodes[id].Level, tower.Damage)
	}
	if g.ECS.Economy.Energy != 1000-100-150 {
		t.Fatalf("energy = %d", g.ECS.Economy.Energy)
	}

	g.ECS.Economy.Energy = 0
	wantReason(t, g.Upgrade(id), ReasonInsufficientEnergy)
	wantReason(t, g.Upgrade(999), ReasonNodeNotFound)
}

func TestGameOverKeepsSimulationRunning(t *testing.T) {
	g := newTestGame(t, 1000)
	g.ECS.Economy.Health = -3
	g.ECS.Economy.GameOver = true

	mustBuild(t, g, 30, 0, defs.TowerCannon)
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave after game over: %v", err)
	}
	if err := g.Upgrade(g.ECS.CoreID); err != nil {
		t.Fatalf("Upgrade after game over: %v", err)
	}

	frame := g.Frame()
	for i := 0; i < 10; i++ {
		g.Update()
	}
	if g.Frame() != frame+10 {
		t.Fatalf("frame = %d, want %d", g.Frame(), frame+10)
	}
	// ядро продолжает чиниться, флаг остаётся
	if s := g.Snapshot(); !s.GameOver || s.Health <= -3 {
		t.Fatalf("snapshot game_over=%v health=%v", s.GameOver, s.Health)
	}
}
