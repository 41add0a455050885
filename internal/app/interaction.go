// internal/app/interaction.go
package app

import (
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geom"
)

// PreviewHitRadius — клик ближе этого к голограмме подтверждает постройку.
const PreviewHitRadius = 1.5

// NodePickRadius is how close a click must land to select a node.
const NodePickRadius = 2.0

// Interaction — режим ввода игрока: строительство с предпросмотром,
// режим соединения и выбранный узел.
type Interaction struct {
	BuildType   defs.TowerType
	Preview     *Preview
	ConnectMode bool
	Selected    types.EntityID
}

// Preview — голограмма будущей башни.
type Preview struct {
	Position geom.Vec2
	Type     defs.TowerType
	Reason   Reason // пусто, если место свободно
}

// Interaction returns a copy of the current input mode.
func (g *Game) Interaction() Interaction {
	in := g.interaction
	if in.Preview != nil {
		p := *in.Preview
		in.Preview = &p
	}
	return in
}

// SelectBuildType toggles build mode for t. Any pending preview and connect
// mode are cancelled.
func (g *Game) SelectBuildType(t defs.TowerType) error {
	if _, ok := g.TowerDefs[t]; !ok {
		return rejectf(ReasonUnknownTowerType, "unknown tower type %q", t)
	}
	g.interaction.Preview = nil
	g.interaction.ConnectMode = false
	if g.interaction.BuildType == t {
		g.interaction.BuildType = ""
		return nil
	}
	g.interaction.BuildType = t
	g.interaction.Selected = 0
	return nil
}

// ToggleConnectMode switches connect mode and cancels build mode.
func (g *Game) ToggleConnectMode() bool {
	g.interaction.ConnectMode = !g.interaction.ConnectMode
	g.interaction.BuildType = ""
	g.interaction.Preview = nil
	g.interaction.Selected = 0
	return g.interaction.ConnectMode
}

// CancelInteraction drops every pending mode and selection.
func (g *Game) CancelInteraction() {
	g.interaction = Interaction{}
}

// PreviewAt places the build hologram at (x, z) and reports its placement error.
func (g *Game) PreviewAt(x, z float64) (*Preview, error) {
	if g.interaction.BuildType == "" {
		return nil, rejectf(ReasonInvalidCommand, "no tower type selected")
	}
	p := &Preview{Position: geom.V(x, z), Type: g.interaction.BuildType}
	if err := g.CheckPlacement(p.Position); err != nil {
		p.Reason = ReasonOf(err)
	}
	g.interaction.Preview = p
	return p, nil
}

// ConfirmPreview builds the tower shown by the hologram. Build mode stays on.
func (g *Game) ConfirmPreview() (types.EntityID, error) {
	p := g.interaction.Preview
	if p == nil {
		return 0, rejectf(ReasonNoPreview, "nothing to confirm")
	}
	id, err := g.Build(p.Position.X, p.Position.Z, p.Type)
	if err != nil {
		return 0, err
	}
	g.interaction.Preview = nil
	return id, nil
}

// ClickGround handles a click on empty ground: in build mode it moves or
// confirms the hologram, otherwise it clears the selection.
func (g *Game) ClickGround(x, z float64) (types.EntityID, error) {
	if g.interaction.BuildType == "" {
		g.interaction.Selected = 0
		return 0, nil
	}
	if p := g.interaction.Preview; p != nil && p.Position.Dist(geom.V(x, z)) <= PreviewHitRadius {
		return g.ConfirmPreview()
	}
	_, err := g.PreviewAt(x, z)
	return 0, err
}

// ClickNode selects a node. In connect mode a second click on another node
// links the two.
func (g *Game) ClickNode(id types.EntityID) (types.EntityID, error) {
	if _, ok := g.ECS.Nodes[id]; !ok {
		return 0, rejectf(ReasonNodeNotFound, "no node %d", id)
	}
	g.interaction.Preview = nil

	src := g.interaction.Selected
	if !g.interaction.ConnectMode || src == 0 || src == id {
		g.interaction.Selected = id
		return 0, nil
	}

	cid, err := g.Connect(src, id)
	switch ReasonOf(err) {
	case "", ReasonConnectionExists:
		g.interaction.Selected = 0
	}
	return cid, err
}
