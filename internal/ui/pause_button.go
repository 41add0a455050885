// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		// треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-s, b.Y-s*1.2)
		path.LineTo(b.X-s, b.Y+s*1.2)
		path.LineTo(b.X+s, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// две полоски (pause)
	width, height, spacing := s*0.6, s*2.0, s*0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

var whitePixel *ebiten.Image

// fillPath заливает замкнутый путь сплошным цветом.
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whitePixel.SubImage(whitePixel.Bounds().Inset(1)).(*ebiten.Image), op)
}
