// internal/app/game.go
package app

import (
	"log/slog"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/system"
	"go-core-defense/internal/utils"
)

// Game holds the simulation state and its systems. It is not safe for
// concurrent use; loop.Loop serialises access for multi-goroutine callers.
type Game struct {
	ECS                *entity.ECS
	Tuning             config.Tuning
	TowerDefs          map[defs.TowerType]defs.TowerDefinition
	Rng                *utils.PRNGService
	EventDispatcher    *event.Dispatcher
	NetworkSystem      *system.NetworkSystem
	CoreSystem         *system.CoreSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	GathererSystem     *system.GathererSystem

	interaction Interaction
	log         *slog.Logger
}

// NewGame initializes a new game instance.
func NewGame(tuning config.Tuning) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)

	g := &Game{
		ECS:             ecs,
		Tuning:          tuning,
		TowerDefs:       copyDefs(defs.TowerDefs),
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		log:             slog.With("component", "game"),
	}
	g.NetworkSystem = system.NewNetworkSystem(ecs, rng, eventDispatcher)
	g.CoreSystem = system.NewCoreSystem(ecs, g.NetworkSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.NetworkSystem, rng, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, rng, eventDispatcher, tuning.WaveReward)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.GathererSystem = system.NewGathererSystem(ecs, eventDispatcher)

	ecs.Economy = &component.Economy{
		Energy:    tuning.InitialEnergy,
		Health:    tuning.InitialHealth,
		SiloPrice: tuning.SiloBasePrice,
	}
	ecs.AddCore(config.CoreBaseCapacity)
	g.generateObstacles()
	for i := 0; i < tuning.StartGatherers; i++ {
		g.GathererSystem.Spawn()
	}

	g.log.Info("Game created",
		"seed", rng.Seed(),
		"obstacles", len(ecs.Obstacles),
		"energy", ecs.Economy.Energy,
	)
	return g
}

func copyDefs(src map[defs.TowerType]defs.TowerDefinition) map[defs.TowerType]defs.TowerDefinition {
	out := make(map[defs.TowerType]defs.TowerDefinition, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Update advances the simulation by one tick. The system order matters:
// generation, transport, towers, projectiles, waves, enemies, gatherers.
func (g *Game) Update() {
	g.ECS.Frame++
	frame := g.ECS.Frame

	g.CoreSystem.Update(frame)
	g.NetworkSystem.Update()
	g.CombatSystem.Update(frame)
	g.ProjectileSystem.Update()
	g.VisualEffectSystem.Update()
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.GathererSystem.Update()
}

// Frame returns the number of ticks simulated so far.
func (g *Game) Frame() int64 {
	return g.ECS.Frame
}

// StartWave begins the next wave.
func (g *Game) StartWave() error {
	if err := g.WaveSystem.StartWave(); err != nil {
		return wrapReject(ReasonWaveActive, "wave already in progress", err)
	}
	return nil
}

// ToggleSandbox switches unlimited energy on or off. Turning it off restores
// the energy the player had when it was turned on.
func (g *Game) ToggleSandbox() bool {
	econ := g.ECS.Economy
	econ.Sandbox = !econ.Sandbox
	if econ.Sandbox {
		econ.StoredEnergy = econ.Energy
		econ.Energy = g.Tuning.SandboxEnergy
	} else {
		econ.Energy = econ.StoredEnergy
	}
	g.log.Info("Sandbox toggled", "enabled", econ.Sandbox)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.SandboxToggled,
		Frame: g.ECS.Frame,
		Data:  map[string]any{"enabled": econ.Sandbox},
	})
	return econ.Sandbox
}

// canAfford reports whether cost can be paid; sandbox pays for everything.
func (g *Game) canAfford(cost int) bool {
	econ := g.ECS.Economy
	return econ.Sandbox || econ.Energy >= cost
}

func (g *Game) spend(cost int) {
	if !g.ECS.Economy.Sandbox {
		g.ECS.Economy.Energy -= cost
	}
}
