// Package pixel implements the canvas image and color helpers used to render icons.
//
// The image types are compatible with Go's native [image.Image] and [draw.Image]
// interfaces, so they can be handed to [image/png] and [image/draw] directly.
package pixel
