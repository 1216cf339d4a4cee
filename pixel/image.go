package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/walleticon/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// NRGBAImage is a 32-bit non-premultiplied RGBA image.
//
// Pixels written with Set are stored as-is, so a semi-transparent color reads back
// with the exact channel values it was written with.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage returns a fully transparent image of w by h pixels.
func NewNRGBAImage(w, h int) *NRGBAImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

func (p *NRGBAImage) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *NRGBAImage) Fill(c color.Color) {
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		p.Pix[i+0] = v.R
		p.Pix[i+1] = v.G
		p.Pix[i+2] = v.B
		p.Pix[i+3] = v.A
	}
}

// Alpha returns the alpha value at (x, y), or 0 outside the image.
func (p *NRGBAImage) Alpha(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)+3]
}

// Interface checks.
var (
	_ Image = (*NRGBAImage)(nil)
)
