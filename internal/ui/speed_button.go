// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает число тиков симуляции за кадр.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Multipliers   []int
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, multipliers []int, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, Multipliers: multipliers, StateColors: stateColors}
}

// Multiplier returns how many ticks run per frame.
func (b *SpeedButton) Multiplier() int {
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height, width := s*1.2, s
	offset := width * 0.8
	for _, shift := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+shift, b.Y-height/2)
		path.LineTo(b.X+shift, b.Y)
		path.LineTo(b.X-width+shift, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
}
