// Package st7735 controls a ST7735 TFT display via SPI.
//
// The ST7735 is a 18-bit color TFT controller with 132x162 pixels of RAM,
// driven here in 16-bit RGB565 mode. This driver implements the
// display.Drawer interface from periph.io and adds the primitives a
// drawing application needs: single pixels, lines, filled rectangles and
// windowed bulk writes.
//
// # Hardware Connection
//
// Connect the ST7735 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/SCK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC/A0       → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//	BL/LED      → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/etchasketch/rgb565"
//		"github.com/flavioheleno/etchasketch/st7735"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO22")
//
//		dev, _ := st7735.NewSPI(spiBus, dcPin, nil) // 160x128 landscape
//		defer dev.Halt()
//
//		dev.FillRect(dev.Bounds(), rgb565.Black)
//		dev.DrawLine(0, 0, 159, 127, rgb565.Yellow)
//	}
//
// # Drawing Modes
//
// ## Direct Primitives
//
// DrawPixel, DrawLine and FillRect each open a RAM window and stream the
// pixels inside it. DrawLine uses the raster package so the cells it touches
// are the ones an in-memory buffer would touch for the same segment.
//
// ## Bulk Writes
//
// WriteRect streams a row-major slice of colors into one window. Write does
// the same for the whole screen from raw big-endian bytes.
//
// ## Differential Updates
//
// Draw keeps a copy of what the panel shows and only transfers the bounding
// rectangle of the pixels that changed.
//
// # Transfer Size
//
// When the SPI connection reports a conn.Limits maximum transfer size, pixel
// data is split into chunks of at most that size. Linux spidev defaults to
// 4096 bytes while a full 160x128 frame is 40960 bytes.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
package st7735
