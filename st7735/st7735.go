// Package st7735 controls a ST7735 TFT display via SPI.
//
// The ST7735 is a 262K color TFT controller with 132x162 pixels of RAM. Common
// panels expose 128x160 pixels and are driven in 16-bit RGB565 mode.
//
// See the examples for how to use this package.
package st7735

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/etchasketch/raster"
	"github.com/flavioheleno/etchasketch/rgb565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Command set subset used by this driver.
const (
	cmdSWRESET = 0x01
	cmdSLPOUT  = 0x11
	cmdNORON   = 0x13
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdMADCTL  = 0x36
	cmdCOLMOD  = 0x3A
	cmdFRMCTR1 = 0xB1
	cmdFRMCTR2 = 0xB2
	cmdFRMCTR3 = 0xB3
	cmdINVCTR  = 0xB4
	cmdPWCTR1  = 0xC0
	cmdPWCTR2  = 0xC1
	cmdPWCTR3  = 0xC2
	cmdPWCTR4  = 0xC3
	cmdPWCTR5  = 0xC4
	cmdVMCTR1  = 0xC5
	cmdGMCTRP1 = 0xE0
	cmdGMCTRN1 = 0xE1
)

// MADCTL bits.
const (
	madctlMY  = 0x80
	madctlMX  = 0x40
	madctlMV  = 0x20
	madctlBGR = 0x08
)

var errHalted = errors.New("st7735: halted")

// Rotation is the clockwise rotation applied to the panel.
type Rotation uint8

const (
	Rotation0   Rotation = iota // Portrait
	Rotation90                  // Landscape
	Rotation180                 // Portrait, upside down
	Rotation270                 // Landscape, upside down
)

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Panel dimensions in pixels, in the unrotated (portrait) orientation.
	W int // Width (default: 128, must be ≤132)
	H int // Height (default: 160, must be ≤162)

	// RAM offsets of the visible area, in the unrotated orientation.
	ColStart int
	RowStart int

	Rotation Rotation
	BGR      bool // Panel wired with blue and red swapped

	// SPI clock (default: 15MHz)
	Hz physic.Frequency

	// Optional pins
	RST gpio.PinOut // Reset pin (optional, nil if not used)
	BL  gpio.PinOut // Backlight pin (optional, nil if not used)
}

// DefaultOpts is a 1.8" 128x160 black tab panel held in landscape.
var DefaultOpts = Opts{
	W:        128,
	H:        160,
	Rotation: Rotation270,
	Hz:       15 * physic.MegaHertz,
}

// Dev is the device handle for the ST7735 display.
type Dev struct {
	// Communication
	c     conn.Conn   // SPI connection
	dc    gpio.PinOut // Data/Command pin
	rst   gpio.PinOut // Reset pin (optional)
	bl    gpio.PinOut // Backlight pin (optional)
	maxTx int         // Largest single transfer, 0 when unlimited

	// Display geometry
	rect               image.Rectangle
	colStart, rowStart int

	// Pixel buffers
	buffer *rgb565.Image // What the panel currently shows
	next   *rgb565.Image // For lazy double buffering in Draw

	// State
	halted bool
}

// NewSPI creates a new ST7735 device connected via SPI.
//
// The SPI port is configured for Mode0, 8-bit transfers. The dc (Data/Command)
// GPIO pin must be provided.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.W <= 0 || opts.W > 132 {
		return nil, errors.New("st7735: width must be between 1 and 132")
	}
	if opts.H <= 0 || opts.H > 162 {
		return nil, errors.New("st7735: height must be between 1 and 162")
	}
	if opts.Rotation > Rotation270 {
		return nil, fmt.Errorf("st7735: invalid rotation %d", opts.Rotation)
	}
	if dc == nil {
		return nil, errors.New("st7735: dc pin is required")
	}
	hz := opts.Hz
	if hz == 0 {
		hz = DefaultOpts.Hz
	}

	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7735: %w", err)
	}

	d := newDev(c, dc, opts)
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) *Dev {
	w, h := opts.W, opts.H
	colStart, rowStart := opts.ColStart, opts.RowStart
	if opts.Rotation == Rotation90 || opts.Rotation == Rotation270 {
		w, h = h, w
		colStart, rowStart = rowStart, colStart
	}
	rect := image.Rect(0, 0, w, h)
	d := &Dev{
		c:        c,
		dc:       dc,
		rst:      opts.RST,
		bl:       opts.BL,
		rect:     rect,
		colStart: colStart,
		rowStart: rowStart,
		buffer:   rgb565.NewImage(rect),
	}
	if l, ok := c.(conn.Limits); ok {
		d.maxTx = l.MaxTxSize()
	}
	return d
}

// initStep is one command of the power-on sequence.
type initStep struct {
	cmd   byte
	args  []byte
	delay time.Duration
}

// initSequence is the black tab power-on sequence.
var initSequence = []initStep{
	{cmdSWRESET, nil, 150 * time.Millisecond},
	{cmdSLPOUT, nil, 500 * time.Millisecond},
	{cmdFRMCTR1, []byte{0x01, 0x2C, 0x2D}, 0},
	{cmdFRMCTR2, []byte{0x01, 0x2C, 0x2D}, 0},
	{cmdFRMCTR3, []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}, 0},
	{cmdINVCTR, []byte{0x07}, 0},
	{cmdPWCTR1, []byte{0xA2, 0x02, 0x84}, 0},
	{cmdPWCTR2, []byte{0xC5}, 0},
	{cmdPWCTR3, []byte{0x0A, 0x00}, 0},
	{cmdPWCTR4, []byte{0x8A, 0x2A}, 0},
	{cmdPWCTR5, []byte{0x8A, 0xEE}, 0},
	{cmdVMCTR1, []byte{0x0E}, 0},
	{cmdINVOFF, nil, 0},
	{cmdCOLMOD, []byte{0x05}, 0}, // 16-bit color
	{cmdGMCTRP1, []byte{
		0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
		0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
	}, 0},
	{cmdGMCTRN1, []byte{
		0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
		0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
	}, 0},
	{cmdNORON, nil, 10 * time.Millisecond},
}

// madctl returns the memory access control byte for a rotation.
func madctl(r Rotation, bgr bool) byte {
	var m byte
	switch r {
	case Rotation0:
		m = madctlMX | madctlMY
	case Rotation90:
		m = madctlMY | madctlMV
	case Rotation180:
		m = 0
	case Rotation270:
		m = madctlMX | madctlMV
	}
	if bgr {
		m |= madctlBGR
	}
	return m
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735: failed to pull RST high: %w", err)
		}
		time.Sleep(150 * time.Millisecond)
	}

	for _, s := range initSequence {
		if err := d.sendCommand(s.cmd, s.args...); err != nil {
			return err
		}
		if s.delay != 0 {
			time.Sleep(s.delay)
		}
	}
	if err := d.sendCommand(cmdMADCTL, madctl(opts.Rotation, opts.BGR)); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.FillRect(d.rect, rgb565.Black); err != nil {
		return err
	}

	if err := d.sendCommand(cmdDISPON); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)
	return d.SetBacklight(true)
}

// sendCommand sends a command byte followed by its parameters.
func (d *Dev) sendCommand(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return d.sendData(args)
}

// sendData sends a slice of data bytes, split to the connection limit.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := len(data)
		if d.maxTx > 0 && n > d.maxTx {
			n = d.maxTx
		}
		if err := d.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// setWindow selects the RAM region r and starts a memory write.
func (d *Dev) setWindow(r image.Rectangle) error {
	x0 := r.Min.X + d.colStart
	x1 := r.Max.X - 1 + d.colStart
	y0 := r.Min.Y + d.rowStart
	y1 := r.Max.Y - 1 + d.rowStart
	if err := d.sendCommand(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.sendCommand(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMWR)
}

// writeRect writes encoded pixel data to a rectangular region of the display.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	if err := d.setWindow(r); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display, after rotation.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// DrawPixel sets a single pixel. Pixels outside the display are ignored.
func (d *Dev) DrawPixel(x, y int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if !(image.Point{X: x, Y: y}.In(d.rect)) {
		return nil
	}
	if err := d.writeRect(image.Rect(x, y, x+1, y+1), []byte{byte(c >> 8), byte(c)}); err != nil {
		return err
	}
	d.buffer.SetRGB565(x, y, c)
	return nil
}

// FillRect fills r, clipped to the display, with a single color.
func (d *Dev) FillRect(r image.Rectangle, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	pixels := make([]byte, 0, 2*r.Dx()*r.Dy())
	for i := 0; i < r.Dx()*r.Dy(); i++ {
		pixels = append(pixels, byte(c>>8), byte(c))
	}
	if err := d.writeRect(r, pixels); err != nil {
		return err
	}
	d.buffer.Fill(r, c)
	return nil
}

// DrawLine draws the segment from (x0, y0) to (x1, y1), both included, with
// the cells chosen by raster.Line. Cells outside the display are skipped.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	// Axis aligned segments go out as a single window.
	if x0 == x1 || y0 == y1 {
		r := image.Rect(x0, y0, x1, y1).Canon()
		r.Max = r.Max.Add(image.Pt(1, 1))
		return d.FillRect(r, c)
	}
	var err error
	raster.Line(x0, y0, x1, y1, func(x, y int) {
		if err == nil {
			err = d.DrawPixel(x, y, c)
		}
	})
	return err
}

// WriteRect streams pix to the region r in a single addressed transfer. pix
// holds r.Dx()*r.Dy() colors in row-major order and r must lie within the
// display.
func (d *Dev) WriteRect(r image.Rectangle, pix []rgb565.Color) error {
	if d.halted {
		return errHalted
	}
	if r.Empty() || !r.In(d.rect) {
		return errors.New("st7735: rectangle out of display bounds")
	}
	if len(pix) != r.Dx()*r.Dy() {
		return errors.New("st7735: invalid buffer size")
	}
	if err := d.writeRect(r, rgb565.Append(make([]byte, 0, 2*len(pix)), pix)); err != nil {
		return err
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := d.buffer.PixOffset(r.Min.X, y)
		copy(d.buffer.Pix[i:i+r.Dx()], pix[(y-r.Min.Y)*r.Dx():])
	}
	return nil
}

// Write writes raw big-endian RGB565 pixel data covering the whole display.
// The data must be exactly 2 * d.rect.Dx() * d.rect.Dy() bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != 2*len(d.buffer.Pix) {
		return 0, errors.New("st7735: invalid buffer size")
	}
	if err := d.writeRect(d.rect, pixels); err != nil {
		return 0, err
	}
	for i := range d.buffer.Pix {
		d.buffer.Pix[i] = rgb565.Color(pixels[2*i])<<8 | rgb565.Color(pixels[2*i+1])
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Lazy-initialize double buffer
	if d.next == nil {
		d.next = rgb565.NewImage(d.rect)
	}
	copy(d.next.Pix, d.buffer.Pix)

	draw.Draw(d.next, dst, src, sp, draw.Src)

	changed := d.calculateDiff()
	if changed.Empty() {
		return nil
	}
	if err := d.writeRect(changed, d.next.AppendRect(nil, changed)); err != nil {
		return err
	}
	copy(d.buffer.Pix, d.next.Pix)
	return nil
}

// calculateDiff compares the shown and next buffers and returns the minimal
// rectangle holding every changed pixel, or an empty rectangle.
func (d *Dev) calculateDiff() image.Rectangle {
	width := d.rect.Dx()
	height := d.rect.Dy()

	minRow, maxRow := height, -1
	minCol, maxCol := width, -1

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			if d.buffer.Pix[row+x] == d.next.Pix[row+x] {
				continue
			}
			minRow = min(minRow, y)
			maxRow = max(maxRow, y)
			minCol = min(minCol, x)
			maxCol = max(maxCol, x)
		}
	}
	if maxRow < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minCol, minRow, maxCol+1, maxRow+1)
}

// SetBacklight switches the backlight pin, if one was provided.
func (d *Dev) SetBacklight(on bool) error {
	if d.bl == nil {
		return nil
	}
	return d.bl.Out(gpio.Level(on))
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(cmdINVOFF)
	if invert {
		cmd = cmdINVON
	}
	return d.sendCommand(cmd)
}

// Halt turns the display and its backlight off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.SetBacklight(false); err != nil {
		return err
	}
	return d.sendCommand(cmdDISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = (*Dev)(nil)
