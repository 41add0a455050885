package system

import (
	"testing"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/internal/utils"
	"go-core-defense/pkg/geom"
)

type testWorld struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	events     *event.Dispatcher
	network    *NetworkSystem
	core       *CoreSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	wave       *WaveSystem
	movement   *MovementSystem
	gatherer   *GathererSystem
	effects    *VisualEffectSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	ecs := entity.NewECS()
	ecs.AddCore(config.CoreBaseCapacity)
	ecs.Economy.Health = config.MaxCoreHealth
	rng := utils.NewPRNGService(1)
	events := event.NewDispatcher()
	network := NewNetworkSystem(ecs, rng, events)
	return &testWorld{
		ecs:        ecs,
		rng:        rng,
		events:     events,
		network:    network,
		core:       NewCoreSystem(ecs, network),
		combat:     NewCombatSystem(ecs, network, rng, events),
		projectile: NewProjectileSystem(ecs),
		wave:       NewWaveSystem(ecs, rng, events, 200),
		movement:   NewMovementSystem(ecs, events),
		gatherer:   NewGathererSystem(ecs, events),
		effects:    NewVisualEffectSystem(ecs),
	}
}

func (w *testWorld) addTower(t *testing.T, tt defs.TowerType, x, z float64) types.EntityID {
	t.Helper()
	tower, node := component.NewTower(defs.DefaultTowerDefs()[tt], geom.V(x, z))
	id := w.ecs.NewEntity()
	w.ecs.Towers[id] = tower
	w.ecs.Nodes[id] = node
	return id
}

func (w *testWorld) addEnemy(x, z, health float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Enemies[id] = &component.Enemy{Position: geom.V(x, z), Health: health, MaxHealth: health}
	return id
}

func (w *testWorld) connect(t *testing.T, a, b types.EntityID) {
	t.Helper()
	if _, err := w.network.AddConnection(a, b); err != nil {
		t.Fatalf("AddConnection(%d, %d): %v", a, b, err)
	}
}

// tick runs the full system order once, the same way the game loop does.
func (w *testWorld) tick() {
	w.ecs.Frame++
	f := w.ecs.Frame
	w.core.Update(f)
	w.network.Update()
	w.combat.Update(f)
	w.projectile.Update()
	w.effects.Update()
	w.wave.Update()
	w.movement.Update()
	w.gatherer.Update()
}
