package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestNRGBAImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewNRGBAImage(size.X, size.Y)
	}, color.NRGBAModel)
}

func TestNRGBAImageNegativeSize(t *testing.T) {
	i := NewNRGBAImage(-4, -4)
	if v := i.Bounds(); !v.Empty() || v.Min != (image.Point{}) {
		t.Errorf("expected empty bounds at origin, got %s", v)
	}
}

func TestNRGBAImageKeepsAlpha(t *testing.T) {
	i := NewNRGBAImage(2, 2)
	c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 180}
	i.Set(1, 1, c)
	if v := i.At(1, 1); v != c {
		t.Errorf("expected %#+v, got %#+v", c, v)
	}
	if v := i.Alpha(1, 1); v != 180 {
		t.Errorf("expected alpha 180, got %d", v)
	}
	if v := i.Alpha(5, 5); v != 0 {
		t.Errorf("expected alpha 0 out of bounds, got %d", v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(16, 16),
		image.Pt(128, 32),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("transparent", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if _, _, _, a := i.At(x, y).RGBA(); a != 0 {
							itt.Fatalf("pixel (%d,%d) is not transparent", x, y)
						}
					}
				}
			})

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if _, _, _, a := i.At(x, y).RGBA(); a != 0 {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, i.At(x, y))
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if _, _, _, a := i.At(x, y).RGBA(); a != 0 {
						itt.Fatalf("pixel (%d,%d) is not transparent", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
