package system

import (
	"math"
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
)

func TestSiloFullCycle(t *testing.T) {
	w := newTestWorld(t)
	silo := w.addTower(t, defs.TowerSilo, 20, 0)
	w.ecs.Nodes[silo].Storage = 1
	w.addEnemy(60, 0, 1e9)

	tower := w.ecs.Towers[silo]
	var frame int64
	step := func(n int) {
		for i := 0; i < n; i++ {
			frame++
			w.combat.Update(frame)
		}
	}

	step(1)
	if tower.Silo.State != component.SiloOpening {
		t.Fatalf("state after first tick = %s, want OPENING", tower.Silo.State)
	}
	step(49) // frame 50: двери открыты
	if tower.Silo.State != component.SiloFiring {
		t.Fatalf("state at frame 50 = %s, want FIRING", tower.Silo.State)
	}
	step(84) // frame 134: выстрелы на 60, 75, 90, 105, 120
	if n := len(w.ecs.Projectiles); n != 5 {
		t.Fatalf("projectiles at frame 134 = %d, want 5", n)
	}
	step(1) // frame 135: шестой выстрел
	if n := len(w.ecs.Projectiles); n != config.SiloShotsPerCycle {
		t.Fatalf("projectiles = %d, want %d", n, config.SiloShotsPerCycle)
	}
	if tower.Silo.State != component.SiloClosing {
		t.Fatalf("state = %s, want CLOSING", tower.Silo.State)
	}
	if w.ecs.Nodes[silo].Storage != 0 {
		t.Fatalf("storage = %d, want 0", w.ecs.Nodes[silo].Storage)
	}
	step(49) // frame 184
	if tower.Silo.State != component.SiloWaiting {
		t.Fatalf("state at frame 184 = %s, want WAITING", tower.Silo.State)
	}
	if tower.Cooldown != tower.MaxCooldown {
		t.Fatalf("cooldown = %v, want %v", tower.Cooldown, tower.MaxCooldown)
	}
	for _, p := range w.ecs.Projectiles {
		if p.Speed != config.SiloProjectileSpeed || p.AoE != 12 {
			t.Fatalf("bad silo projectile %+v", p)
		}
	}

	// без энергии шахта не открывается даже после перезарядки
	tower.Cooldown = 0
	step(5)
	if tower.Silo.State != component.SiloWaiting {
		t.Fatalf("silo opened without storage")
	}
}

func TestSiloWaitsForEnemies(t *testing.T) {
	w := newTestWorld(t)
	silo := w.addTower(t, defs.TowerSilo, 20, 0)
	w.ecs.Nodes[silo].Storage = 1
	for f := int64(1); f <= 10; f++ {
		w.combat.Update(f)
	}
	if st := w.ecs.Towers[silo].Silo.State; st != component.SiloWaiting {
		t.Fatalf("state = %s, want WAITING", st)
	}
}

func TestRocketSalvoQueue(t *testing.T) {
	w := newTestWorld(t)
	rocket := w.addTower(t, defs.TowerRocket, 20, 0)
	w.ecs.Nodes[rocket].Storage = 5
	w.addEnemy(25, 0, 1e9)
	tower := w.ecs.Towers[rocket]

	w.combat.Update(1)
	if len(tower.Rocket.Shots) != 4 || len(w.ecs.Projectiles) != 0 {
		t.Fatalf("queue=%d projectiles=%d after first tick", len(tower.Rocket.Shots), len(w.ecs.Projectiles))
	}
	if w.ecs.Nodes[rocket].Storage != 4 {
		t.Fatalf("storage = %d, want 4", w.ecs.Nodes[rocket].Storage)
	}

	// уже поставленные в очередь выстрелы сохраняют урон до улучшения
	tower.Upgrade(w.ecs.Nodes[rocket])

	for f := int64(2); f <= 32; f++ {
		w.combat.Update(f)
	}
	if len(w.ecs.Projectiles) != 4 {
		t.Fatalf("projectiles = %d, want 4", len(w.ecs.Projectiles))
	}
	for _, p := range w.ecs.Projectiles {
		if p.Damage != 10 {
			t.Fatalf("sub-shot damage = %v, want 10", p.Damage)
		}
	}
	if len(tower.Rocket.Shots) != 0 {
		t.Fatal("queue not drained")
	}
}

func TestRifleRapidFire(t *testing.T) {
	cases := []struct {
		name  string
		level int
		shots int
	}{
		{"base rifle", 1, 1},
		{"max level rifle", config.RifleRapidFireLevel, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			id := w.addTower(t, defs.TowerRifle, 20, 0)
			node := w.ecs.Nodes[id]
			for node.Level < tc.level {
				w.ecs.Towers[id].Upgrade(node)
			}
			node.Storage = 10
			w.addEnemy(25, 0, 1e9)
			for f := int64(1); f <= 9; f++ {
				w.combat.Update(f)
			}
			if got := len(w.ecs.Projectiles); got != tc.shots {
				t.Fatalf("shots = %d, want %d", got, tc.shots)
			}
			if node.Storage != 10-tc.shots {
				t.Fatalf("storage = %d, want %d", node.Storage, 10-tc.shots)
			}
		})
	}
}

func TestTargetingFirstEncounteredInRange(t *testing.T) {
	w := newTestWorld(t)
	id := w.addTower(t, defs.TowerRifle, 20, 0)
	w.ecs.Nodes[id].Storage = 10
	edge := w.addEnemy(38, 0, 10) // ровно на границе дальности, не цель
	first := w.addEnemy(35, 0, 10)
	w.addEnemy(21, 0, 10) // ближе, но создан позже

	w.combat.Update(1)
	tower := w.ecs.Towers[id]
	if tower.TargetID != first {
		t.Fatalf("target = %d, want %d (edge enemy %d)", tower.TargetID, first, edge)
	}

	// цель держится, пока жива и в радиусе
	w.ecs.Enemies[first].Position.X = 37.9
	w.combat.Update(2)
	if tower.TargetID != first {
		t.Fatal("target dropped while still in range")
	}
	w.ecs.Enemies[first].Dead = true
	w.combat.Update(3)
	if tower.TargetID == first {
		t.Fatal("dead target kept")
	}
}

func TestNoFireWithoutStorage(t *testing.T) {
	w := newTestWorld(t)
	w.addTower(t, defs.TowerCannon, 20, 0)
	w.addEnemy(22, 0, 10)
	for f := int64(1); f <= 100; f++ {
		w.combat.Update(f)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Fatal("tower fired without energy")
	}
}

func TestUpgradeShortensCooldown(t *testing.T) {
	w := newTestWorld(t)
	id := w.addTower(t, defs.TowerSniper, 20, 0)
	tower := w.ecs.Towers[id]
	tower.Upgrade(w.ecs.Nodes[id])
	if math.Abs(tower.MaxCooldown-135) > 1e-9 {
		t.Fatalf("max cooldown = %v, want 135", tower.MaxCooldown)
	}
}
