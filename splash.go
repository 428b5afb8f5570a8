package etchasketch

import (
	"image/color"

	"github.com/flavioheleno/etchasketch/rgb565"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Instructions is the text shown on the startup screen, one entry per line.
var Instructions = []string{
	"WASD: Move",
	"I: Toggle Draw",
	"J: Clear",
	"K: Change Color",
	"L: Thick/Thin",
}

// Layout of the startup screen text.
const (
	textLeft    = 10
	textTop     = 10
	textSpacing = 15
	textAscent  = 6 // Picopixel baseline below the top of a line
)

// textCanvas lets tinyfont render into an off-screen image that is then sent
// to a Display in one transfer.
type textCanvas struct {
	img *rgb565.Image
	d   Display
}

var _ drivers.Displayer = textCanvas{}

func (t textCanvas) Size() (x, y int16) {
	return int16(t.img.Rect.Dx()), int16(t.img.Rect.Dy())
}

func (t textCanvas) SetPixel(x, y int16, c color.RGBA) {
	t.img.Set(t.img.Rect.Min.X+int(x), t.img.Rect.Min.Y+int(y), c)
}

func (t textCanvas) Display() error {
	return t.d.WriteRect(t.img.Rect, t.img.Pix)
}

// drawSplash paints a bordered screen with lines of text directly on d. The
// frame buffer is not involved.
func drawSplash(d Display, lines []string, background, border, text rgb565.Color) error {
	r := d.Bounds()
	img := rgb565.NewImage(r)
	img.Fill(r, border)
	img.Fill(r.Inset(1), background)

	canvas := textCanvas{img: img, d: d}
	fg := color.RGBAModel.Convert(text).(color.RGBA)
	for i, line := range lines {
		y := textTop + textSpacing*i + textAscent
		tinyfont.WriteLine(canvas, &tinyfont.Picopixel, textLeft, int16(y), line, fg)
	}
	return canvas.Display()
}
