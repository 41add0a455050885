// internal/tui/view.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-core-defense/internal/app"
	"go-core-defense/internal/defs"
	"go-core-defense/pkg/geom"
)

// Kind — что нарисовано в клетке; от него зависит стиль.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindObstacle
	KindLink
	KindPacket
	KindCore
	KindTower
	KindTowerOffline
	KindShard
	KindGatherer
	KindEnemy
	KindProjectile
	KindExplosion
	KindPreview
	KindPreviewBad
	KindCursor
)

type Cell struct {
	Rune rune
	Kind Kind
}

// Viewport maps world units to terminal cells. Cells are about twice as tall
// as wide, so z is squashed by half.
type Viewport struct {
	Width, Height int
	Scale         float64 // клеток на единицу мира по x
	Center        geom.Vec2
}

func (v Viewport) ToCell(p geom.Vec2) (int, int) {
	x := int(math.Round(float64(v.Width)/2 + (p.X-v.Center.X)*v.Scale))
	y := int(math.Round(float64(v.Height)/2 + (p.Z-v.Center.Z)*v.Scale/2))
	return x, y
}

func (v Viewport) ToWorld(x, y int) geom.Vec2 {
	return geom.V(
		v.Center.X+(float64(x)-float64(v.Width)/2)/v.Scale,
		v.Center.Z+(float64(y)-float64(v.Height)/2)*2/v.Scale,
	)
}

var towerGlyphs = map[defs.TowerType]rune{
	defs.TowerRifle:  'R',
	defs.TowerCannon: 'C',
	defs.TowerRocket: 'K',
	defs.TowerSniper: 'S',
	defs.TowerSilo:   'M',
}

// Rasterize draws the snapshot into a Width×Height grid. Later layers
// overwrite earlier ones.
func Rasterize(s *app.Snapshot, v Viewport, cursor geom.Vec2) [][]Cell {
	grid := make([][]Cell, v.Height)
	for y := range grid {
		grid[y] = make([]Cell, v.Width)
		for x := range grid[y] {
			grid[y][x] = Cell{Rune: ' '}
		}
	}
	put := func(p geom.Vec2, r rune, k Kind) {
		x, y := v.ToCell(p)
		if x >= 0 && x < v.Width && y >= 0 && y < v.Height {
			grid[y][x] = Cell{Rune: r, Kind: k}
		}
	}

	for _, o := range s.Obstacles {
		glyph := '^'
		if o.Kind == "rock" {
			glyph = '#'
		}
		put(o.Position, glyph, KindObstacle)
	}

	pos := make(map[uint64]geom.Vec2, len(s.Nodes))
	for _, n := range s.Nodes {
		pos[uint64(n.ID)] = n.Position
	}
	for _, c := range s.Connections {
		a, b := pos[uint64(c.A)], pos[uint64(c.B)]
		steps := int(a.Dist(b)*v.Scale) + 1
		for i := 1; i < steps; i++ {
			put(a.Lerp(b, float64(i)/float64(steps)), '·', KindLink)
		}
	}
	for _, p := range s.Packets {
		put(p.Position, '*', KindPacket)
	}
	for _, n := range s.Nodes {
		switch {
		case n.Core:
			put(n.Position, '@', KindCore)
		case n.Distance < 0:
			put(n.Position, towerGlyphs[n.Type], KindTowerOffline)
		default:
			put(n.Position, towerGlyphs[n.Type], KindTower)
		}
	}
	for _, sh := range s.Shards {
		put(sh.Position, '+', KindShard)
	}
	for _, g := range s.Gatherers {
		put(g.Position, 'g', KindGatherer)
	}
	for _, e := range s.Enemies {
		put(e.Position, 'x', KindEnemy)
	}
	for _, p := range s.Projectiles {
		put(p.Position, '.', KindProjectile)
	}
	for _, ex := range s.Explosions {
		put(ex.Position, 'O', KindExplosion)
	}
	if p := s.Interaction.Preview; p != nil {
		k := KindPreview
		if p.Reason != "" {
			k = KindPreviewBad
		}
		put(p.Position, towerGlyphs[p.Type], k)
	}
	put(cursor, '+', KindCursor)
	return grid
}

var styles = map[Kind]tcell.Style{
	KindEmpty:        tcell.StyleDefault,
	KindObstacle:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	KindLink:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	KindPacket:       tcell.StyleDefault.Foreground(tcell.ColorAqua),
	KindCore:         tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	KindTower:        tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	KindTowerOffline: tcell.StyleDefault.Foreground(tcell.ColorGray),
	KindShard:        tcell.StyleDefault.Foreground(tcell.ColorLime),
	KindGatherer:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
	KindEnemy:        tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	KindProjectile:   tcell.StyleDefault.Foreground(tcell.ColorOrange),
	KindExplosion:    tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
	KindPreview:      tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true),
	KindPreviewBad:   tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true),
	KindCursor:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
}

// Draw renders the grid plus a two-line status bar at the bottom.
func Draw(screen tcell.Screen, s *app.Snapshot, v Viewport, cursor geom.Vec2, status string) {
	screen.Clear()
	for y, row := range Rasterize(s, v, cursor) {
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, styles[c.Kind])
		}
	}

	hud := fmt.Sprintf("E:%d  HP:%.1f  Wave:%d", s.Energy, s.Health, s.Wave.Number)
	if s.Wave.Active {
		hud += fmt.Sprintf(" (%d left)", s.Wave.Alive+s.Wave.EnemiesToSpawn)
	}
	if s.Sandbox {
		hud += "  SANDBOX"
	}
	if s.Interaction.BuildType != "" {
		hud += "  build:" + string(s.Interaction.BuildType)
	}
	if s.Interaction.ConnectMode {
		hud += "  CONNECT"
	}
	if s.GameOver {
		hud += "  CORE DESTROYED"
	}
	drawText(screen, 0, v.Height, hud, tcell.StyleDefault.Reverse(true))
	drawText(screen, 0, v.Height+1, status, tcell.StyleDefault)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
