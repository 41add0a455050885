// internal/ui/toolbar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
)

// Toolbar — нижняя панель: башни, соединение, волна, песочница.
type Toolbar struct {
	towers  []*Button
	types   []defs.TowerType
	connect *Button
	wave    *Button
	sandbox *Button
}

func NewToolbar(towerDefs map[defs.TowerType]defs.TowerDefinition) *Toolbar {
	tb := &Toolbar{}
	x := config.ButtonGap
	for _, t := range defs.TowerOrder {
		if _, ok := towerDefs[t]; !ok {
			continue
		}
		tb.towers = append(tb.towers, NewButton(x, config.ToolbarY, config.ButtonWidth, config.ButtonHeight, string(t)))
		tb.types = append(tb.types, t)
		x += config.ButtonWidth + config.ButtonGap
	}
	x += config.ButtonGap * 2
	tb.connect = NewButton(x, config.ToolbarY, config.ButtonWidth, config.ButtonHeight, "CONNECT")
	x += config.ButtonWidth + config.ButtonGap
	tb.wave = NewButton(x, config.ToolbarY, config.ButtonWidth, config.ButtonHeight, "WAVE")
	x += config.ButtonWidth + config.ButtonGap
	tb.sandbox = NewButton(x, config.ToolbarY, config.ButtonWidth, config.ButtonHeight, "SANDBOX")
	return tb
}

// Sync updates labels and highlight state from a snapshot.
func (tb *Toolbar) Sync(s *app.Snapshot, towerDefs map[defs.TowerType]defs.TowerDefinition) {
	for i, b := range tb.towers {
		t := tb.types[i]
		cost := towerDefs[t].Cost
		if towerDefs[t].RampPrice {
			cost = s.SiloPrice
		}
		b.Text = fmt.Sprintf("%s %d", t, cost)
		b.Active = s.Interaction.BuildType == t
		b.Disabled = !s.Sandbox && s.Energy < cost
	}
	tb.connect.Active = s.Interaction.ConnectMode
	tb.wave.Active = s.Wave.Active
	tb.wave.Disabled = s.Wave.Active
	tb.sandbox.Active = s.Sandbox
}

// Contains reports whether the point is on the toolbar strip.
func (tb *Toolbar) Contains(x, y int) bool {
	return y >= config.ToolbarY-config.ButtonGap
}

// CommandAt maps a click to a command.
func (tb *Toolbar) CommandAt(x, y int) (app.Command, bool) {
	for i, b := range tb.towers {
		if b.Contains(x, y) {
			return app.Command{Type: app.CmdSelectBuild, Tower: tb.types[i]}, true
		}
	}
	switch {
	case tb.connect.Contains(x, y):
		return app.Command{Type: app.CmdToggleConnect}, true
	case tb.wave.Contains(x, y):
		return app.Command{Type: app.CmdStartWave}, true
	case tb.sandbox.Contains(x, y):
		return app.Command{Type: app.CmdToggleSandbox}, true
	}
	return app.Command{}, false
}

func (tb *Toolbar) Draw(screen *ebiten.Image, face font.Face) {
	for _, b := range tb.towers {
		b.Draw(screen, face)
	}
	tb.connect.Draw(screen, face)
	tb.wave.Draw(screen, face)
	tb.sandbox.Draw(screen, face)
}
