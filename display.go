package etchasketch

import (
	"image"

	"github.com/flavioheleno/etchasketch/rgb565"
)

// Display is the raster target the engine renders on.
//
// Implementations clip pixels and lines to Bounds. WriteRect
// receives exactly r.Dx()*r.Dy() colors in row-major order for a rectangle
// inside Bounds.
type Display interface {
	Bounds() image.Rectangle
	DrawPixel(x, y int, c rgb565.Color) error
	DrawLine(x0, y0, x1, y1 int, c rgb565.Color) error
	WriteRect(r image.Rectangle, pix []rgb565.Color) error
}

// Indicator reflects the drawing mode outside the display, typically on
// LEDs.
type Indicator interface {
	ShowDrawing(drawing bool) error
}
