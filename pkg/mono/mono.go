package mono

import (
	"image"
	"image/color"
)

// DefaultThreshold splits antialiased grey text roughly down the middle,
// which keeps 1px font edges lit on the panel.
const DefaultThreshold = 0x60

// Convert re-encodes src as a pure black/white grayscale image. Pixels with
// a luma at or above threshold become white, everything else black.
func Convert(src image.Image, threshold uint8) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)

	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			if g.Y >= threshold {
				dst.SetGray(x, y, color.Gray{Y: 0xFF})
			} else {
				dst.SetGray(x, y, color.Gray{Y: 0x00})
			}
		}
	}

	return dst
}
