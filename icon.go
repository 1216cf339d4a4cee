package walleticon

import (
	"image"
	"image/color"

	"github.com/BeatGlow/walleticon/draw"
	"github.com/BeatGlow/walleticon/pixel"
)

// Icon colors.
var (
	GradientStart = color.NRGBA{R: 102, G: 126, B: 234, A: 0xff} // #667eea
	GradientEnd   = color.NRGBA{R: 240, G: 147, B: 251, A: 0xff} // #f093fb
	BodyColor     = pixel.WithAlpha(pixel.White, 240)
	FlapColor     = pixel.WithAlpha(pixel.White, 180)
	SlotColor     = GradientStart
	ShineColor    = pixel.WithAlpha(pixel.White, 100)
)

// Geometry holds the drawing parameters derived from an icon size.
//
// All values are integer fractions of Size, so every shape stays inside the canvas.
type Geometry struct {
	// Size is the icon width and height in pixels.
	Size int

	// Padding is the transparent margin around the gradient.
	Padding int

	// Radius is the corner mask radius.
	Radius int

	// Wallet is the wallet body.
	Wallet image.Rectangle

	// WalletRadius is the corner radius of the wallet body.
	WalletRadius int

	// Flap covers the top third of the wallet body.
	Flap image.Rectangle

	// Slot is the left end of the card slot line, SlotLength its length and
	// SlotStroke its thickness.
	Slot       image.Point
	SlotLength int
	SlotStroke int

	// Shine bounds the highlight ellipse on the wallet's top left corner.
	Shine image.Rectangle
}

// GeometryFor returns the geometry for an icon of size pixels.
func GeometryFor(size int) Geometry {
	var (
		w = size / 2
		h = size / 3
		x = (size - w) / 2
		y = (size - h) / 2
		s = size / 8
	)
	return Geometry{
		Size:         size,
		Padding:      size / 10,
		Radius:       size / 4,
		Wallet:       image.Rect(x, y, x+w, y+h),
		WalletRadius: size / 20,
		Flap:         image.Rect(x, y, x+w, y+h/3),
		Slot:         image.Pt(x+w/4, y+h/2),
		SlotLength:   3*w/4 - w/4,
		SlotStroke:   max(1, size/40),
		Shine:        image.Rect(x-s/2, y-s/2, x-s/2+s, y-s/2+s),
	}
}

// Render draws the icon at size by size pixels.
//
// Steps, in order: gradient, corner mask, wallet body, flap, card slot and
// shine. Each step replaces the pixels it covers, so the flap reads back as
// [FlapColor] rather than a blend with the body below it.
//
// Sizes below 8 pixels produce degenerate artwork; a size of zero or less
// returns an empty image.
func Render(size int) *image.NRGBA {
	if size <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	g := GeometryFor(size)
	debugf("render %dpx: padding=%d radius=%d wallet=%s shine=%s", size, g.Padding, g.Radius, g.Wallet, g.Shine)

	canvas := pixel.NewNRGBAImage(size, size)
	paintGradient(canvas, g)
	MaskCorners(canvas, g.Padding, g.Radius)
	draw.RoundedBox(canvas, g.Wallet, g.WalletRadius, BodyColor)
	draw.Box(canvas, g.Flap, FlapColor)
	draw.ThickHorizontalLine(canvas, g.Slot.X, g.Slot.Y, g.SlotLength, g.SlotStroke, SlotColor)
	draw.Ellipse(canvas, g.Shine, ShineColor)
	return canvas.NRGBA
}

// paintGradient fills columns [padding, size-padding) with a horizontal gradient.
func paintGradient(dst draw.Image, g Geometry) {
	var (
		p = g.Padding
		n = g.Size - 2*p
	)
	for i := p; i < g.Size-p; i++ {
		c := pixel.Lerp(GradientStart, GradientEnd, float64(i-p)/float64(n))
		draw.VerticalLine(dst, i, p, n, c)
	}
}

// MaskCorners clears the pixels of the four padding by padding corner squares
// of dst whose squared distance to the square's inner corner exceeds radius².
//
// The inner corner is the corner of the square closest to the center of dst.
// With the default icon proportions the radius is larger than the corner
// square, so the mask leaves the icon unchanged.
func MaskCorners(dst draw.Image, padding, radius int) {
	var (
		b  = dst.Bounds()
		r2 = radius * radius
	)
	for y := 0; y < padding; y++ {
		for x := 0; x < padding; x++ {
			dx, dy := padding-x, padding-y
			if dx*dx+dy*dy <= r2 {
				continue
			}
			dst.Set(b.Min.X+x, b.Min.Y+y, pixel.Transparent)
			dst.Set(b.Max.X-1-x, b.Min.Y+y, pixel.Transparent)
			dst.Set(b.Min.X+x, b.Max.Y-1-y, pixel.Transparent)
			dst.Set(b.Max.X-1-x, b.Max.Y-1-y, pixel.Transparent)
		}
	}
}
