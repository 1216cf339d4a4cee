package walleticon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// RenderSupersampled renders the icon at factor times its size and scales it down
// with a Catmull-Rom filter, which smooths the rounded corners and the shine.
//
// A factor of 1 or less returns [Render] as-is.
func RenderSupersampled(size, factor int) *image.NRGBA {
	if factor <= 1 || size <= 0 {
		return Render(size)
	}

	src := Render(size * factor)
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	debugf("supersampled %dpx from %s", size, src.Bounds().Size())
	return dst
}
