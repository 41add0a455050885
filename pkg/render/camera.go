// pkg/render/camera.go
package render

import (
	"math"

	"go-core-defense/pkg/geom"
)

// Camera maps the ground plane (x, z) to screen pixels: x goes right, z goes down.
type Camera struct {
	OffsetX, OffsetY float64
	Scale            float64
}

func NewCamera(centerX, centerY, scale float64) Camera {
	return Camera{OffsetX: centerX, OffsetY: centerY, Scale: scale}
}

func (c Camera) WorldToScreen(p geom.Vec2) (float32, float32) {
	return float32(c.OffsetX + p.X*c.Scale), float32(c.OffsetY + p.Z*c.Scale)
}

func (c Camera) ScreenToWorld(x, y int) geom.Vec2 {
	return geom.V((float64(x)-c.OffsetX)/c.Scale, (float64(y)-c.OffsetY)/c.Scale)
}

// Len converts a world distance to pixels.
func (c Camera) Len(d float64) float32 {
	return float32(d * c.Scale)
}

// Pan shifts the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// Zoom scales around the screen point (x, y), clamped to [min, max].
func (c *Camera) Zoom(factor float64, x, y int, min, max float64) {
	next := math.Max(min, math.Min(max, c.Scale*factor))
	anchor := c.ScreenToWorld(x, y)
	c.Scale = next
	c.OffsetX = float64(x) - anchor.X*next
	c.OffsetY = float64(y) - anchor.Z*next
}
