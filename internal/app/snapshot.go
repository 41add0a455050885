// internal/app/snapshot.go
package app

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

// Snapshot is a read-only copy of the world after a tick.
type Snapshot struct {
	Frame       int64            `json:"frame"`
	Energy      int              `json:"energy"`
	Health      float64          `json:"health"`
	Sandbox     bool             `json:"sandbox"`
	GameOver    bool             `json:"game_over"`
	SiloPrice   int              `json:"silo_price"`
	Wave        WaveView         `json:"wave"`
	Core        CoreView         `json:"core"`
	Nodes       []NodeView       `json:"nodes"`
	Connections []ConnectionView `json:"connections"`
	Packets     []PacketView     `json:"packets"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
	Shards      []ShardView      `json:"shards"`
	Gatherers   []GathererView   `json:"gatherers"`
	Obstacles   []ObstacleView   `json:"obstacles"`
	Explosions  []ExplosionView  `json:"explosions"`
	Interaction InteractionView  `json:"interaction"`
}

type WaveView struct {
	Number         int  `json:"number"`
	Active         bool `json:"active"`
	EnemiesToSpawn int  `json:"enemies_to_spawn"`
	Total          int  `json:"total"`
	Alive          int  `json:"alive"`
}

type CoreView struct {
	ID            types.EntityID `json:"id"`
	Level         int            `json:"level"`
	PulseInterval float64        `json:"pulse_interval"`
	RepairRate    float64        `json:"repair_rate"`
	UpgradeCost   int            `json:"upgrade_cost"`
	Satellites    int            `json:"satellites"`
	Walls         int            `json:"walls"`
}

type NodeView struct {
	ID           types.EntityID `json:"id"`
	Core         bool           `json:"core"`
	Type         defs.TowerType `json:"type,omitempty"`
	Position     geom.Vec2      `json:"position"`
	Level        int            `json:"level"`
	Storage      int            `json:"storage"`
	Capacity     int            `json:"capacity"`
	Distance     int            `json:"distance"` // -1, если нет пути к ядру
	Range        float64        `json:"range,omitempty"`
	Damage       float64        `json:"damage,omitempty"`
	Cooldown     float64        `json:"cooldown,omitempty"` // доля от полной перезарядки
	UpgradeCost  int            `json:"upgrade_cost"`
	SellValue    int            `json:"sell_value,omitempty"`
	TargetID     types.EntityID `json:"target,omitempty"`
	QueuedShots  int            `json:"queued_shots,omitempty"`
	SiloState    string         `json:"silo_state,omitempty"`
	DoorProgress float64        `json:"door_progress,omitempty"`
}

type ConnectionView struct {
	ID types.EntityID `json:"id"`
	A  types.EntityID `json:"a"`
	B  types.EntityID `json:"b"`
}

type PacketView struct {
	From     types.EntityID `json:"from"`
	To       types.EntityID `json:"to"`
	Position geom.Vec2      `json:"position"`
}

type EnemyView struct {
	ID       types.EntityID `json:"id"`
	Position geom.Vec2      `json:"position"`
	Health   float64        `json:"health"` // доля 0..1
}

type ProjectileView struct {
	Position geom.Vec2           `json:"position"`
	Kind     defs.ProjectileKind `json:"kind"`
	Source   defs.TowerType      `json:"source"`
}

type ShardView struct {
	Position geom.Vec2 `json:"position"`
	Claimed  bool      `json:"claimed"`
}

type GathererView struct {
	Position  geom.Vec2 `json:"position"`
	Altitude  float64   `json:"altitude"`
	Storage   int       `json:"storage"`
	Returning bool      `json:"returning"`
}

type ObstacleView struct {
	Position geom.Vec2              `json:"position"`
	Radius   float64                `json:"radius"`
	Kind     component.ObstacleKind `json:"kind"`
}

type ExplosionView struct {
	Position geom.Vec2 `json:"position"`
	Radius   float64   `json:"radius"`
	Opacity  float64   `json:"opacity"`
}

type InteractionView struct {
	BuildType   defs.TowerType `json:"build_type,omitempty"`
	ConnectMode bool           `json:"connect_mode"`
	Selected    types.EntityID `json:"selected,omitempty"`
	Preview     *PreviewView   `json:"preview,omitempty"`
}

type PreviewView struct {
	Position geom.Vec2      `json:"position"`
	Type     defs.TowerType `json:"type"`
	Range    float64        `json:"range"`
	Reason   Reason         `json:"reason,omitempty"`
}

// Snapshot copies the current state for presenters.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	econ := ecs.Economy
	s := Snapshot{
		Frame:     ecs.Frame,
		Energy:    econ.Energy,
		Health:    econ.Health,
		Sandbox:   econ.Sandbox,
		GameOver:  econ.GameOver,
		SiloPrice: econ.SiloPrice,
		Wave: WaveView{
			Number:         ecs.Wave.Number,
			Active:         ecs.Wave.Active,
			EnemiesToSpawn: ecs.Wave.EnemiesToSpawn,
			Total:          ecs.Wave.Total,
			Alive:          len(ecs.Enemies),
		},
	}
	if ecs.Core != nil {
		core := ecs.CoreNode()
		s.Core = CoreView{
			ID:            ecs.CoreID,
			Level:         core.Level,
			PulseInterval: ecs.Core.PulseInterval,
			RepairRate:    ecs.Core.RepairRate,
			UpgradeCost:   ecs.Core.UpgradeCost,
			Satellites:    ecs.Core.Satellites,
			Walls:         ecs.Core.Walls,
		}
	}

	for _, id := range entity.Sorted(ecs.Nodes) {
		s.Nodes = append(s.Nodes, g.nodeView(id))
	}
	for _, id := range entity.Sorted(ecs.Connections) {
		c := ecs.Connections[id]
		s.Connections = append(s.Connections, ConnectionView{ID: id, A: c.A, B: c.B})
	}
	for _, id := range entity.Sorted(ecs.Packets) {
		p := ecs.Packets[id]
		if pos, ok := g.NetworkSystem.PacketPosition(p); ok {
			s.Packets = append(s.Packets, PacketView{From: p.From, To: p.To, Position: pos})
		}
	}
	for _, id := range entity.Sorted(ecs.Enemies) {
		e := ecs.Enemies[id]
		frac := 0.0
		if e.MaxHealth > 0 {
			frac = max(0, e.Health/e.MaxHealth)
		}
		s.Enemies = append(s.Enemies, EnemyView{ID: id, Position: e.Position, Health: frac})
	}
	for _, id := range entity.Sorted(ecs.Projectiles) {
		p := ecs.Projectiles[id]
		s.Projectiles = append(s.Projectiles, ProjectileView{Position: p.Position, Kind: p.Kind, Source: p.Source})
	}
	for _, id := range entity.Sorted(ecs.Shards) {
		sh := ecs.Shards[id]
		s.Shards = append(s.Shards, ShardView{Position: sh.Position, Claimed: sh.Claimed})
	}
	for _, id := range entity.Sorted(ecs.Gatherers) {
		gt := ecs.Gatherers[id]
		s.Gatherers = append(s.Gatherers, GathererView{Position: gt.Position, Altitude: gt.Altitude, Storage: gt.Storage, Returning: gt.Returning})
	}
	for _, id := range entity.Sorted(ecs.Obstacles) {
		o := ecs.Obstacles[id]
		s.Obstacles = append(s.Obstacles, ObstacleView{Position: o.Position, Radius: o.Radius, Kind: o.Kind})
	}
	for _, id := range entity.Sorted(ecs.Explosions) {
		ex := ecs.Explosions[id]
		s.Explosions = append(s.Explosions, ExplosionView{Position: ex.Position, Radius: ex.Radius, Opacity: ex.Opacity})
	}

	in := g.interaction
	s.Interaction = InteractionView{BuildType: in.BuildType, ConnectMode: in.ConnectMode, Selected: in.Selected}
	if p := in.Preview; p != nil {
		s.Interaction.Preview = &PreviewView{
			Position: p.Position,
			Type:     p.Type,
			Range:    g.TowerDefs[p.Type].Range,
			Reason:   p.Reason,
		}
	}
	return s
}

func (g *Game) nodeView(id types.EntityID) NodeView {
	n := g.ECS.Nodes[id]
	v := NodeView{
		ID:       id,
		Core:     n.IsCore,
		Position: n.Position,
		Level:    n.Level,
		Storage:  n.Storage,
		Capacity: n.Capacity,
		Distance: n.Distance,
	}
	if !n.Reachable() {
		v.Distance = -1
	}
	v.UpgradeCost, _ = g.UpgradeCost(id)

	t, ok := g.ECS.Towers[id]
	if !ok {
		return v
	}
	v.Type = t.Type
	v.Range = t.Range
	v.Damage = t.Damage
	if t.MaxCooldown > 0 {
		// у скорострельной винтовки Cooldown может превышать MaxCooldown
		v.Cooldown = min(1, t.Cooldown/t.MaxCooldown)
	}
	v.SellValue = t.SellRefund()
	if _, alive := g.ECS.LiveEnemy(t.TargetID); alive {
		v.TargetID = t.TargetID
	}
	if t.Rocket != nil {
		v.QueuedShots = len(t.Rocket.Shots)
	}
	if t.Silo != nil {
		v.SiloState = string(t.Silo.State)
		v.DoorProgress = t.Silo.DoorProgress()
	}
	return v
}

// Node returns the view of a single node.
func (g *Game) Node(id types.EntityID) (NodeView, bool) {
	if _, ok := g.ECS.Nodes[id]; !ok {
		return NodeView{}, false
	}
	return g.nodeView(id), true
}
