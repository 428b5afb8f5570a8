package etchasketch

// Present sends the whole frame buffer to the display as one windowed
// transfer.
func Present(d Display, fb *FrameBuffer) error {
	return d.WriteRect(fb.Bounds(), fb.Pix())
}
