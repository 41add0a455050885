// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/types"
)

const (
	panelHeight    = 120
	panelWidth     = 300
	panelMargin    = 8
	animationSpeed = 12.0
	lineHeight     = 18
)

// InfoPanel показывает выбранный узел и кнопки улучшения/продажи.
// Выезжает справа.
type InfoPanel struct {
	Target   types.EntityID
	currentX float64
	targetX  float64

	upgrade *Button
	sell    *Button
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentX: config.ScreenWidth,
		targetX:  config.ScreenWidth,
		upgrade:  &Button{Text: "UPGRADE"},
		sell:     &Button{Text: "SELL"},
	}
}

func (p *InfoPanel) IsVisible() bool {
	return p.currentX < config.ScreenWidth
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.Target = id
	p.targetX = config.ScreenWidth - panelWidth - panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Update animates the panel and follows the selection in the snapshot.
func (p *InfoPanel) Update(s *app.Snapshot) {
	if sel := s.Interaction.Selected; sel != 0 && !s.Interaction.ConnectMode {
		p.SetTarget(sel)
	} else {
		p.Hide()
	}

	if diff := p.targetX - p.currentX; diff != 0 {
		if math.Abs(diff) < animationSpeed {
			p.currentX = p.targetX
		} else {
			p.currentX += math.Copysign(animationSpeed, diff)
		}
	}
	if p.currentX >= config.ScreenWidth {
		p.Target = 0
	}
}

func (p *InfoPanel) rect() image.Rectangle {
	x := int(p.currentX)
	return image.Rect(x, panelMargin, x+panelWidth, panelMargin+panelHeight)
}

func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible() && image.Pt(x, y).In(p.rect())
}

// CommandAt maps a click inside the panel to upgrade or sell.
func (p *InfoPanel) CommandAt(x, y int) (app.Command, bool) {
	if p.Target == 0 {
		return app.Command{}, false
	}
	switch {
	case p.upgrade.Contains(x, y):
		return app.Command{Type: app.CmdUpgrade, Node: p.Target}, true
	case p.sell.Contains(x, y) && !p.sell.Disabled:
		return app.Command{Type: app.CmdSell, Node: p.Target}, true
	}
	return app.Command{}, false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s *app.Snapshot, face font.Face) {
	if !p.IsVisible() || p.Target == 0 {
		return
	}
	var node *app.NodeView
	for i := range s.Nodes {
		if s.Nodes[i].ID == p.Target {
			node = &s.Nodes[i]
			break
		}
	}
	if node == nil {
		return
	}

	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{25, 35, 45, 230}, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{70, 130, 180, 255}, true)

	x, y := r.Min.X+12, r.Min.Y+20
	for _, line := range describeNode(node) {
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += lineHeight
	}

	bw, bh := 90, 26
	p.upgrade.Rect = image.Rect(r.Max.X-bw-12, r.Min.Y+12, r.Max.X-12, r.Min.Y+12+bh)
	p.upgrade.Text = fmt.Sprintf("UP %d", node.UpgradeCost)
	p.upgrade.Disabled = !s.Sandbox && s.Energy < node.UpgradeCost
	p.upgrade.Draw(screen, face)

	p.sell.Rect = image.Rect(r.Max.X-bw-12, r.Min.Y+20+bh, r.Max.X-12, r.Min.Y+20+2*bh)
	p.sell.Text = fmt.Sprintf("SELL %d", node.SellValue)
	p.sell.Disabled = node.Core
	if !node.Core {
		p.sell.Draw(screen, face)
	}
}

// describeNode собирает строки для панели.
func describeNode(n *app.NodeView) []string {
	title := string(n.Type)
	if n.Core {
		title = "CORE"
	}
	lines := []string{
		fmt.Sprintf("%s  lvl %d", title, n.Level),
		fmt.Sprintf("Energy: %d/%d", n.Storage, n.Capacity),
	}
	switch {
	case n.Core:
	case n.Distance < 0:
		lines = append(lines, "No link to core")
	default:
		lines = append(lines, fmt.Sprintf("Hops to core: %d", n.Distance))
	}
	if !n.Core {
		lines = append(lines, fmt.Sprintf("Dmg %.1f  Range %.1f", n.Damage, n.Range))
	}
	if n.SiloState != "" {
		lines = append(lines, fmt.Sprintf("Silo: %s", n.SiloState))
	}
	return lines
}
