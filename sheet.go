package walleticon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/walleticon/draw"
)

const (
	sheetMargin      = 8
	sheetLabelHeight = 16
	sheetChecker     = 8
	sheetFontSize    = 12
)

var (
	checkerLight = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	checkerDark  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	frameColor   = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	labelColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Sheet lays out icons left to right on a checkerboard, each framed and with its size
// printed below.
func Sheet(icons []image.Image) *image.NRGBA {
	var (
		face               = labelFace()
		cells, labels, dim = sheetLayout(icons, face)
		sheet              = image.NewNRGBA(image.Rectangle{Max: dim})
	)
	fillChecker(sheet)

	drawer := &font.Drawer{
		Dst:  sheet,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, icon := range icons {
		draw.Draw(sheet, cells[i], icon, icon.Bounds().Min, draw.Over)
		draw.Rectangle(sheet, cells[i].Inset(-1), frameColor)

		drawer.Dot = fixed.P(labels[i].X, labels[i].Y+ascent)
		drawer.DrawString(iconLabel(icon))
	}
	return sheet
}

// sheetLayout returns where each icon and the top left of each label go, and the sheet size.
func sheetLayout(icons []image.Image, face font.Face) (cells []image.Rectangle, labels []image.Point, dim image.Point) {
	var maxHeight int
	for _, icon := range icons {
		maxHeight = max(maxHeight, icon.Bounds().Dy())
	}
	labelTop := sheetMargin + maxHeight + sheetMargin/2

	var x int
	for _, icon := range icons {
		var (
			size       = icon.Bounds().Size()
			labelWidth = font.MeasureString(face, iconLabel(icon)).Ceil()
			width      = max(size.X, labelWidth) + 2*sheetMargin
			pos        = image.Pt(x+(width-size.X)/2, sheetMargin)
		)
		cells = append(cells, image.Rectangle{Min: pos, Max: pos.Add(size)})
		labels = append(labels, image.Pt(x+(width-labelWidth)/2, labelTop))
		x += width
	}
	return cells, labels, image.Pt(x, labelTop+sheetLabelHeight+sheetMargin/2)
}

func iconLabel(icon image.Image) string {
	return fmt.Sprintf("%dpx", icon.Bounds().Dx())
}

func fillChecker(dst draw.Image) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += sheetChecker {
		for x := b.Min.X; x < b.Max.X; x += sheetChecker {
			c := checkerLight
			if ((x-b.Min.X)/sheetChecker+(y-b.Min.Y)/sheetChecker)%2 == 1 {
				c = checkerDark
			}
			draw.Box(dst, image.Rect(x, y, x+sheetChecker, y+sheetChecker).Intersect(b), c)
		}
	}
}

// labelFace returns Go Regular, or the built-in bitmap face if it fails to parse.
func labelFace() font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		debugf("label font parse failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    sheetFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
