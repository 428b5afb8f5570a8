// Package indicator shows the drawing mode on a status LED and a single
// NeoPixel.
//
// While drawing the LED is on and the pixel is green. In cursor mode the LED
// is off and the pixel is red.
package indicator

import (
	"fmt"
	"io"

	"github.com/flavioheleno/etchasketch"
	"periph.io/x/conn/v3/gpio"
)

// Pixel colors, as raw RGB.
var (
	drawingRGB = []byte{0x00, 0xFF, 0x00}
	cursorRGB  = []byte{0xFF, 0x00, 0x00}
)

// Dev drives the indicators.
type Dev struct {
	pixel io.Writer
	led   gpio.PinOut
}

// New returns a Dev. pixel receives one raw RGB pixel per update, which is
// what nrzled.Dev accepts. Either output can be nil.
func New(pixel io.Writer, led gpio.PinOut) *Dev {
	return &Dev{pixel: pixel, led: led}
}

// ShowDrawing implements etchasketch.Indicator.
func (d *Dev) ShowDrawing(drawing bool) error {
	if d.led != nil {
		if err := d.led.Out(gpio.Level(drawing)); err != nil {
			return fmt.Errorf("indicator: led: %w", err)
		}
	}
	if d.pixel != nil {
		rgb := cursorRGB
		if drawing {
			rgb = drawingRGB
		}
		if _, err := d.pixel.Write(rgb); err != nil {
			return fmt.Errorf("indicator: pixel: %w", err)
		}
	}
	return nil
}

// Halt turns both indicators off.
func (d *Dev) Halt() error {
	if d.pixel != nil {
		if _, err := d.pixel.Write([]byte{0, 0, 0}); err != nil {
			return fmt.Errorf("indicator: pixel: %w", err)
		}
	}
	if d.led != nil {
		if err := d.led.Out(gpio.Low); err != nil {
			return fmt.Errorf("indicator: led: %w", err)
		}
	}
	return nil
}

var _ etchasketch.Indicator = (*Dev)(nil)
