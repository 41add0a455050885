// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, w app.WaveView, face font.Face) {
	if w.Number <= 0 {
		return
	}
	label := toRoman(w.Number)
	var clr color.Color = config.TextLightColor
	if w.Number%10 == 0 {
		clr = config.WaveStateColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	// обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, label, face, x+dx, i.Y+dy, config.TextDarkColor)
			}
		}
	}
	text.Draw(screen, label, face, x, i.Y, clr)

	if w.Active {
		left := fmt.Sprintf("%d/%d", w.Alive+w.EnemiesToSpawn, w.Total)
		b := text.BoundString(face, left)
		text.Draw(screen, left, face, i.X-b.Dx()/2, i.Y+16, config.TextLightColor)
	}
}
