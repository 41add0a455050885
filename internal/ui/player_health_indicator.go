// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/config"
)

const (
	HealthRows          = 5
	HealthCols          = 4
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// CoreHealthIndicator отображает здоровье ядра сеткой кружков.
type CoreHealthIndicator struct {
	X, Y float32
}

func NewCoreHealthIndicator(x, y float32) *CoreHealthIndicator {
	return &CoreHealthIndicator{X: x, Y: y}
}

// filledCells is how many of the cells show as full.
func filledCells(health, maxHealth float64) int {
	cells := HealthRows * HealthCols
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	return min(cells, int(math.Ceil(health/maxHealth*float64(cells))))
}

func (i *CoreHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64, face font.Face) {
	cells := HealthRows * HealthCols
	filled := filledCells(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < cells; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		var clr color.Color = color.Black
		if j < filled {
			clr = config.CoreColor
			if filled <= cells/2 {
				clr = config.EnemyColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%.1f/%.0f", health, maxHealth)
	b := text.BoundString(face, label)
	text.Draw(screen, label, face, int(i.X)+(int(step)*HealthCols-b.Dx())/2, int(i.Y)-8, config.TextLightColor)
}
