package pixel

import "image/color"

// Common colors.
var (
	Transparent = color.NRGBA{}
	White       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Lerp linearly interpolates between a and b at t, which is clamped to [0, 1].
//
// Channels are truncated, not rounded.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
