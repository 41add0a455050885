// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by f in [0, 1]. Channels are
// premultiplied, as image/color expects.
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Lerp mixes two colors; t=0 gives a, t=1 gives b.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
