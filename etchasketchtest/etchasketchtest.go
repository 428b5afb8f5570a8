// Package etchasketchtest provides fakes of the etchasketch collaborators for
// tests.
package etchasketchtest

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/flavioheleno/etchasketch"
	"github.com/flavioheleno/etchasketch/raster"
	"github.com/flavioheleno/etchasketch/rgb565"
)

// Op is one call received by Display.
type Op struct {
	Name string // "pixel", "line" or "write"
	Rect image.Rectangle
}

func (o Op) String() string {
	return fmt.Sprintf("%s%v", o.Name, o.Rect)
}

// Display is an in-memory etchasketch.Display.
//
// Img holds what a panel would show. Every call is appended to Ops. When Err
// is set, every call returns it without touching Img.
type Display struct {
	sync.Mutex
	Img *rgb565.Image
	Ops []Op
	Err error
}

// NewDisplay returns a black Display of w by h pixels.
func NewDisplay(w, h int) *Display {
	return &Display{Img: rgb565.NewImage(image.Rect(0, 0, w, h))}
}

// Bounds implements etchasketch.Display.
func (d *Display) Bounds() image.Rectangle {
	return d.Img.Rect
}

// At returns the pixel at (x, y).
func (d *Display) At(x, y int) rgb565.Color {
	d.Lock()
	defer d.Unlock()
	return d.Img.RGB565At(x, y)
}

// Reset forgets the recorded calls.
func (d *Display) Reset() {
	d.Lock()
	defer d.Unlock()
	d.Ops = nil
}

// DrawPixel implements etchasketch.Display.
func (d *Display) DrawPixel(x, y int, c rgb565.Color) error {
	d.Lock()
	defer d.Unlock()
	d.Ops = append(d.Ops, Op{Name: "pixel", Rect: image.Rect(x, y, x+1, y+1)})
	if d.Err != nil {
		return d.Err
	}
	d.Img.SetRGB565(x, y, c)
	return nil
}

// DrawLine implements etchasketch.Display.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c rgb565.Color) error {
	d.Lock()
	defer d.Unlock()
	d.Ops = append(d.Ops, Op{Name: "line", Rect: image.Rect(x0, y0, x1, y1)})
	if d.Err != nil {
		return d.Err
	}
	raster.Line(x0, y0, x1, y1, func(x, y int) {
		d.Img.SetRGB565(x, y, c)
	})
	return nil
}

// WriteRect implements etchasketch.Display.
func (d *Display) WriteRect(r image.Rectangle, pix []rgb565.Color) error {
	d.Lock()
	defer d.Unlock()
	d.Ops = append(d.Ops, Op{Name: "write", Rect: r})
	if d.Err != nil {
		return d.Err
	}
	if !r.In(d.Img.Rect) {
		return errors.New("etchasketchtest: rectangle out of display bounds")
	}
	if len(pix) != r.Dx()*r.Dy() {
		return errors.New("etchasketchtest: invalid buffer size")
	}
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d.Img.SetRGB565(x, y, pix[i])
			i++
		}
	}
	return nil
}

// Count returns how many recorded calls have the given name.
func (d *Display) Count(name string) int {
	d.Lock()
	defer d.Unlock()
	n := 0
	for _, op := range d.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Input is an etchasketch.InputSource controlled by the test.
type Input struct {
	sync.Mutex
	held map[etchasketch.Button]bool
}

// Press holds the buttons down.
func (i *Input) Press(b ...etchasketch.Button) {
	i.set(true, b)
}

// Release lets the buttons go.
func (i *Input) Release(b ...etchasketch.Button) {
	i.set(false, b)
}

// Pressed implements etchasketch.InputSource.
func (i *Input) Pressed(b etchasketch.Button) bool {
	i.Lock()
	defer i.Unlock()
	return i.held[b]
}

func (i *Input) set(v bool, b []etchasketch.Button) {
	i.Lock()
	defer i.Unlock()
	if i.held == nil {
		i.held = map[etchasketch.Button]bool{}
	}
	for _, x := range b {
		i.held[x] = v
	}
}

// Indicator records every state it was asked to show.
type Indicator struct {
	sync.Mutex
	States []bool
	Err    error
}

// ShowDrawing implements etchasketch.Indicator.
func (i *Indicator) ShowDrawing(drawing bool) error {
	i.Lock()
	defer i.Unlock()
	if i.Err != nil {
		return i.Err
	}
	i.States = append(i.States, drawing)
	return nil
}

// Last returns the most recent state, and false when nothing was shown.
func (i *Indicator) Last() (drawing, ok bool) {
	i.Lock()
	defer i.Unlock()
	if len(i.States) == 0 {
		return false, false
	}
	return i.States[len(i.States)-1], true
}

var (
	_ etchasketch.Display     = (*Display)(nil)
	_ etchasketch.InputSource = (*Input)(nil)
	_ etchasketch.Indicator   = (*Indicator)(nil)
)
