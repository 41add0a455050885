// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Active   bool
	Disabled bool
}

func NewButton(x, y, w, h int, label string) *Button {
	return &Button{Rect: image.Rect(x, y, x+w, y+h), Text: label}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	var bg color.Color = config.ButtonColor
	switch {
	case b.Active:
		bg = config.ButtonActive
	case b.Disabled:
		bg = color.RGBA{60, 60, 70, 200}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.IndicatorStroke, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
