// pkg/render/world_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/pkg/geom"
)

// WorldRenderer draws a snapshot top-down with vector primitives.
type WorldRenderer struct {
	Camera   Camera
	fontFace font.Face
}

func NewWorldRenderer(cam Camera, face font.Face) *WorldRenderer {
	return &WorldRenderer{Camera: cam, fontFace: face}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, s *app.Snapshot, hover geom.Vec2) {
	screen.Fill(config.BackgroundColor)
	cx, cy := r.Camera.WorldToScreen(geom.Vec2{})
	vector.DrawFilledCircle(screen, cx, cy, r.Camera.Len(config.ObstacleMaxDistance+10), config.GroundColor, true)

	r.drawObstacles(screen, s)
	r.drawConnections(screen, s)
	r.drawPackets(screen, s)
	r.drawNodes(screen, s)
	r.drawShards(screen, s)
	r.drawEnemies(screen, s)
	r.drawProjectiles(screen, s)
	r.drawExplosions(screen, s)
	r.drawGatherers(screen, s)
	r.drawInteraction(screen, s, hover)
}

func (r *WorldRenderer) drawObstacles(screen *ebiten.Image, s *app.Snapshot) {
	for _, o := range s.Obstacles {
		x, y := r.Camera.WorldToScreen(o.Position)
		clr := config.RockColor
		if o.Kind == "tree" {
			clr = config.TreeColor
		}
		vector.DrawFilledCircle(screen, x, y, r.Camera.Len(o.Radius), clr, true)
		vector.StrokeCircle(screen, x, y, r.Camera.Len(o.Radius), 1, DarkenColor(clr), true)
	}
}

func (r *WorldRenderer) drawConnections(screen *ebiten.Image, s *app.Snapshot) {
	pos := make(map[uint64]geom.Vec2, len(s.Nodes))
	for _, n := range s.Nodes {
		pos[uint64(n.ID)] = n.Position
	}
	for _, c := range s.Connections {
		ax, ay := r.Camera.WorldToScreen(pos[uint64(c.A)])
		bx, by := r.Camera.WorldToScreen(pos[uint64(c.B)])
		vector.StrokeLine(screen, ax, ay, bx, by, config.StrokeWidth, config.ConnectionColor, true)
	}
}

func (r *WorldRenderer) drawPackets(screen *ebiten.Image, s *app.Snapshot) {
	for _, p := range s.Packets {
		x, y := r.Camera.WorldToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, 3, config.PacketColor, true)
	}
}

func (r *WorldRenderer) drawNodes(screen *ebiten.Image, s *app.Snapshot) {
	for _, n := range s.Nodes {
		x, y := r.Camera.WorldToScreen(n.Position)
		if n.Core {
			r.drawCore(screen, s, x, y)
			continue
		}
		clr, ok := config.TowerColors[string(n.Type)]
		if !ok {
			clr = config.TextLightColor
		}
		if n.Distance < 0 {
			clr = DarkenColor(clr)
		}
		size := r.Camera.Len(1.2)
		switch n.Type {
		case defs.TowerCannon, defs.TowerSilo:
			vector.DrawFilledRect(screen, x-size, y-size, size*2, size*2, clr, true)
		default:
			vector.DrawFilledCircle(screen, x, y, size, clr, true)
		}

		if n.SiloState != "" {
			door := float32(n.DoorProgress) * size
			vector.DrawFilledRect(screen, x-door, y-size/3, door*2, size*2/3, config.BackgroundColor, true)
		}
		if n.Capacity > 0 {
			frac := float32(n.Storage) / float32(n.Capacity)
			vector.DrawFilledRect(screen, x-size, y+size+2, size*2*frac, 2, config.PacketColor, false)
		}
		if n.Level > 1 {
			text.Draw(screen, fmt.Sprint(n.Level), r.fontFace, int(x+size)+2, int(y-size), config.TextLightColor)
		}
	}
}

func (r *WorldRenderer) drawCore(screen *ebiten.Image, s *app.Snapshot, x, y float32) {
	size := r.Camera.Len(config.CoreContactRadius * 0.8)
	pulse := float32(1 + 0.08*math.Sin(float64(s.Frame)/s.Core.PulseInterval))
	vector.DrawFilledCircle(screen, x, y, size*pulse, config.CoreColor, true)
	vector.StrokeCircle(screen, x, y, size*pulse, config.StrokeWidth, config.TextLightColor, true)

	for i := 0; i < s.Core.Satellites; i++ {
		a := float64(s.Frame)*0.02 + float64(i)*2*math.Pi/float64(s.Core.Satellites)
		sx, sy := r.Camera.WorldToScreen(geom.FromAngle(a, 5))
		vector.DrawFilledCircle(screen, sx, sy, 3, config.CoreColor, true)
	}
	for i := 0; i < s.Core.Walls; i++ {
		vector.StrokeCircle(screen, x, y, size+r.Camera.Len(1.5+float64(i)), 1, WithAlpha(config.CoreColor, 0.5), true)
	}
}

func (r *WorldRenderer) drawShards(screen *ebiten.Image, s *app.Snapshot) {
	for _, sh := range s.Shards {
		x, y := r.Camera.WorldToScreen(sh.Position)
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, config.ShardColor, false)
	}
}

func (r *WorldRenderer) drawEnemies(screen *ebiten.Image, s *app.Snapshot) {
	size := r.Camera.Len(config.EnemyRadius)
	for _, e := range s.Enemies {
		x, y := r.Camera.WorldToScreen(e.Position)
		vector.DrawFilledCircle(screen, x, y, size, config.EnemyColor, true)
		vector.DrawFilledRect(screen, x-size, y-size-4, size*2, 2, config.BackgroundColor, false)
		vector.DrawFilledRect(screen, x-size, y-size-4, size*2*float32(e.Health), 2, config.ShardColor, false)
	}
}

func (r *WorldRenderer) drawProjectiles(screen *ebiten.Image, s *app.Snapshot) {
	for _, p := range s.Projectiles {
		x, y := r.Camera.WorldToScreen(p.Position)
		clr := config.TowerColors[string(p.Source)]
		switch p.Kind {
		case defs.ProjectileCube:
			vector.DrawFilledRect(screen, x-2, y-2, 4, 4, clr, false)
		case defs.ProjectileRocket, defs.ProjectileMissile:
			vector.DrawFilledCircle(screen, x, y, 3.5, clr, true)
			vector.StrokeCircle(screen, x, y, 5, 1, config.ExplosionColor, true)
		default:
			vector.DrawFilledCircle(screen, x, y, 2, clr, true)
		}
	}
}

func (r *WorldRenderer) drawExplosions(screen *ebiten.Image, s *app.Snapshot) {
	for _, ex := range s.Explosions {
		x, y := r.Camera.WorldToScreen(ex.Position)
		vector.DrawFilledCircle(screen, x, y, r.Camera.Len(ex.Radius), WithAlpha(config.ExplosionColor, ex.Opacity), true)
	}
}

func (r *WorldRenderer) drawGatherers(screen *ebiten.Image, s *app.Snapshot) {
	for _, g := range s.Gatherers {
		x, y := r.Camera.WorldToScreen(g.Position)
		// высота полёта видна по тени
		vector.DrawFilledCircle(screen, x+float32(g.Altitude), y+float32(g.Altitude), 3, WithAlpha(color.RGBA{0, 0, 0, 255}, 0.4), true)
		vector.DrawFilledCircle(screen, x, y, 3, config.GathererColor, true)
	}
}

func (r *WorldRenderer) drawInteraction(screen *ebiten.Image, s *app.Snapshot, hover geom.Vec2) {
	in := s.Interaction
	if in.Selected != 0 {
		for _, n := range s.Nodes {
			if n.ID != in.Selected {
				continue
			}
			x, y := r.Camera.WorldToScreen(n.Position)
			vector.StrokeCircle(screen, x, y, r.Camera.Len(2), config.StrokeWidth, config.SelectionColor, true)
			if n.Range > 0 {
				vector.StrokeCircle(screen, x, y, r.Camera.Len(n.Range), 1, WithAlpha(config.SelectionColor, 0.3), true)
			}
			if in.ConnectMode {
				hx, hy := r.Camera.WorldToScreen(hover)
				vector.StrokeLine(screen, x, y, hx, hy, 1, WithAlpha(config.ConnectionColor, 0.6), true)
			}
		}
	}

	p := in.Preview
	if p == nil {
		return
	}
	clr := config.PreviewOKColor
	if p.Reason != "" {
		clr = config.PreviewBadColor
	}
	x, y := r.Camera.WorldToScreen(p.Position)
	vector.DrawFilledCircle(screen, x, y, r.Camera.Len(1.2), clr, true)
	vector.StrokeCircle(screen, x, y, r.Camera.Len(p.Range), 1, clr, true)
	if p.Reason != "" {
		text.Draw(screen, string(p.Reason), r.fontFace, int(x)+10, int(y)-10, config.PreviewBadColor)
	}
}
