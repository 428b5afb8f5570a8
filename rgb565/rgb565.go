package rgb565

import (
	"image"
	"image/color"
)

// Color is a 16-bit packed 5-6-5 RGB color.
type Color uint16

// Colors with the exact values ST77xx panels are usually driven with.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	Orange  Color = 0xFC00
)

// RGB packs 8-bit channels into a Color, dropping the low bits of each.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA converts the Color to standard RGBA.
// Each channel is widened by replicating its high bits into the low bits so
// that full intensity maps to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to Color.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory image of Color values stored in row-major order.
type Image struct {
	Pix    []Color         // Pixel data, one element per pixel
	Stride int             // Elements per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]Color, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the Color of the pixel at (x, y), or Black outside the
// bounds.
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the Color of the pixel at (x, y). Writes outside the bounds
// are ignored.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// Fill sets every pixel within r to c. r is clipped to the image bounds.
func (p *Image) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		row := p.Pix[i : i+r.Dx()]
		for x := range row {
			row[x] = c
		}
	}
}

// PixOffset returns the index of the element of Pix that corresponds to the
// pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// AppendRect appends the pixels of r, clipped to the image bounds, to dst in
// row-major order and wire byte order.
func (p *Image) AppendRect(dst []byte, r image.Rectangle) []byte {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		dst = Append(dst, p.Pix[i:i+r.Dx()])
	}
	return dst
}

// Append appends pix to dst in wire byte order (big-endian).
func Append(dst []byte, pix []Color) []byte {
	for _, c := range pix {
		dst = append(dst, byte(c>>8), byte(c))
	}
	return dst
}
