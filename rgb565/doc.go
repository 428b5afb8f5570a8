// Package rgb565 provides the 16-bit color format used by ST77xx TFT controllers.
//
// Each pixel is a 5-6-5 packed value: 5 bits of red in the high bits, 6 bits
// of green in the middle and 5 bits of blue in the low bits. The controller
// receives pixels big-endian, high byte first.
//
// Memory layout example for one red pixel followed by one blue pixel:
//
//	Pixels: 0       1
//	Values: 0xF800  0x001F
//	Wire:   F8 00   00 1F
//
// This package provides:
//
// - Color: a packed 5-6-5 color implementing color.Color
// - Model: a color model converting standard Go colors to Color
// - Image: a row-major draw.Image of Color values
//
// Example usage:
//
//	// Create a 160x128 image
//	img := rgb565.NewImage(image.Rect(0, 0, 160, 128))
//
//	// Set a pixel to red
//	img.SetRGB565(10, 20, rgb565.Red)
//
//	// Encode a region for the wire
//	buf := img.AppendRect(nil, image.Rect(0, 0, 160, 1))
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Blue), image.Point{}, draw.Src)
package rgb565
