package etchasketch

import "github.com/flavioheleno/etchasketch/rgb565"

// Palette holds the pen colors in cycling order.
var Palette = [...]rgb565.Color{
	rgb565.White,
	rgb565.Red,
	rgb565.Green,
	rgb565.Blue,
	rgb565.Cyan,
	rgb565.Magenta,
	rgb565.Yellow,
	rgb565.Orange,
}

// PaletteNames holds the name of each Palette entry.
var PaletteNames = [len(Palette)]string{
	"WHITE", "RED", "GREEN", "BLUE", "CYAN", "MAGENTA", "YELLOW", "ORANGE",
}
