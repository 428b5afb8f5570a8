package etchasketch

import (
	"image"

	"github.com/flavioheleno/etchasketch/raster"
	"github.com/flavioheleno/etchasketch/rgb565"
)

// Overlay is the cursor marker shown while not drawing.
//
// It is painted on the display only. The frame buffer below it is never
// modified, which is what allows Erase to put the drawing back.
type Overlay struct {
	visible bool
	at      image.Point
	thick   bool
}

// Visible reports whether the marker is currently on the display.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Cells returns the cells covered by the marker, clipped to fb. It is empty
// when the marker is hidden.
func (o *Overlay) Cells(fb *FrameBuffer) []image.Point {
	if !o.visible {
		return nil
	}
	return footprint(o.at, o.thick, fb.Bounds())
}

// Draw paints the marker at p with color c. A thick marker covers the same
// 2x2 footprint as a thick pen, with p as its top-left cell. A marker already
// on screen is erased first.
func (o *Overlay) Draw(d Display, fb *FrameBuffer, p image.Point, c rgb565.Color, thick bool) error {
	if err := o.Erase(d, fb); err != nil {
		return err
	}
	for _, q := range footprint(p, thick, fb.Bounds()) {
		if err := d.DrawPixel(q.X, q.Y, c); err != nil {
			return err
		}
	}
	o.visible = true
	o.at = p
	o.thick = thick
	return nil
}

// Erase restores the cells under the marker from fb.
func (o *Overlay) Erase(d Display, fb *FrameBuffer) error {
	if !o.visible {
		return nil
	}
	for _, q := range footprint(o.at, o.thick, fb.Bounds()) {
		if err := d.DrawPixel(q.X, q.Y, fb.At(q.X, q.Y)); err != nil {
			return err
		}
	}
	o.visible = false
	return nil
}

// Forget marks the marker as hidden without touching the display. It is used
// after a full repaint has already covered it.
func (o *Overlay) Forget() {
	o.visible = false
}

func footprint(p image.Point, thick bool, bounds image.Rectangle) []image.Point {
	pen := raster.Pen(thick)
	cells := make([]image.Point, 0, len(pen))
	for _, off := range pen {
		if q := p.Add(off); q.In(bounds) {
			cells = append(cells, q)
		}
	}
	return cells
}
