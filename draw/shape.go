// Package draw provides the shape primitives used to compose icons.
//
// Shapes are written pixel by pixel with Set: they replace the destination
// pixels and do not blend. Use [Draw] for Porter-Duff composition.
package draw

import (
	"image"
	"image/color"
	"math"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for end := x + w; x < end; x++ {
		dst.Set(x, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for end := y + h; y < end; y++ {
		dst.Set(x, y, c)
	}
}

// ThickHorizontalLine draws a horizontal line of stroke pixels high, centered on row y.
func ThickHorizontalLine(dst Image, x, y, w, stroke int, c color.Color) {
	if stroke < 1 {
		stroke = 1
	}
	top := y - stroke/2
	for row := top; row < top+stroke; row++ {
		HorizontalLine(dst, x, row, w, c)
	}
}

// Rectangle draws a rectangle.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x, y, w, c)
	HorizontalLine(dst, x, y+h-1, w, c)
	VerticalLine(dst, x, y, h, c)
	VerticalLine(dst, x+w-1, y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
//
// A pixel in one of the corners is filled if its center lies inside the corner circle.
// The radius is clamped to half of the shortest side.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	var (
		w = rect.Dx()
		h = rect.Dy()
		r = radius
	)
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		Box(dst, rect, c)
		return
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		inset := cornerInset(rect, y, r)
		HorizontalLine(dst, rect.Min.X+inset, y, w-2*inset, c)
	}
}

// cornerInset returns how many pixels of row y fall outside the rounded corners.
func cornerInset(rect image.Rectangle, y, r int) int {
	var dy float64
	switch cy := float64(y) + .5; {
	case y < rect.Min.Y+r:
		dy = float64(rect.Min.Y+r) - cy
	case y >= rect.Max.Y-r:
		dy = cy - float64(rect.Max.Y-r)
	default:
		return 0
	}
	if dy <= 0 {
		return 0
	}

	// First column whose center satisfies dx² + dy² <= r².
	var (
		rf    = float64(r)
		dx    = math.Sqrt(math.Max(rf*rf-dy*dy, 0))
		inset = int(math.Ceil(rf - dx - .5))
	)
	if inset < 0 {
		return 0
	}
	return inset
}

// Ellipse draws a filled ellipse inscribed in rect.
func Ellipse(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		rx = float64(rect.Dx()) / 2
		ry = float64(rect.Dy()) / 2
		cx = float64(rect.Min.X) + rx
		cy = float64(rect.Min.Y) + ry
	)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dy := (float64(y) + .5 - cy) / ry
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx := (float64(x) + .5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				dst.Set(x, y, c)
			}
		}
	}
}
