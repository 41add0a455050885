// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-core-defense/internal/config"
)

// StateIndicator — кружок состояния: идёт волна или затишье. Клик по нему
// запускает следующую волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, waveActive bool) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	var clr color.Color = config.IdleStateColor
	if waveActive {
		clr = config.WaveStateColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, config.StrokeWidth, config.IndicatorStroke, true)
}

func (i *StateIndicator) Contains(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
