package etchasketch

import (
	"image"

	"github.com/flavioheleno/etchasketch/raster"
	"github.com/flavioheleno/etchasketch/rgb565"
)

// FrameBuffer is the authoritative copy of the drawing, including its border.
//
// Cells are stored row-major in a single slice sized once at creation.
type FrameBuffer struct {
	img        *rgb565.Image
	border     rgb565.Color
	background rgb565.Color
}

// NewFrameBuffer returns a cleared buffer covering r.
func NewFrameBuffer(r image.Rectangle, border, background rgb565.Color) *FrameBuffer {
	f := &FrameBuffer{
		img:        rgb565.NewImage(r),
		border:     border,
		background: background,
	}
	f.Clear()
	return f
}

// Bounds returns the area covered by the buffer.
func (f *FrameBuffer) Bounds() image.Rectangle {
	return f.img.Rect
}

// Clear sets the perimeter cells to the border color and every other cell to
// the background color.
func (f *FrameBuffer) Clear() {
	r := f.img.Rect
	f.img.Fill(r, f.border)
	f.img.Fill(r.Inset(1), f.background)
}

// Set changes the cell at (x, y). Cells outside the buffer are ignored.
func (f *FrameBuffer) Set(x, y int, c rgb565.Color) {
	f.img.SetRGB565(x, y, c)
}

// At returns the cell at (x, y). Outside the buffer it returns the zero color.
func (f *FrameBuffer) At(x, y int) rgb565.Color {
	return f.img.RGB565At(x, y)
}

// DrawLine rasterizes the segment from (x0, y0) to (x1, y1) into the buffer.
func (f *FrameBuffer) DrawLine(x0, y0, x1, y1 int, c rgb565.Color) {
	raster.Line(x0, y0, x1, y1, func(x, y int) {
		f.img.SetRGB565(x, y, c)
	})
}

// Pix returns the cells in row-major order. The slice aliases the buffer.
func (f *FrameBuffer) Pix() []rgb565.Color {
	return f.img.Pix
}
