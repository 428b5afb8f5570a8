package etchasketch

import (
	"image"
	"testing"

	"github.com/flavioheleno/etchasketch/rgb565"
)

func TestFrameBufferClear(t *testing.T) {
	sizes := []image.Point{{160, 128}, {3, 3}, {4, 7}, {20, 2}, {1, 1}}
	for _, sz := range sizes {
		r := image.Rectangle{Max: sz}
		fb := NewFrameBuffer(r, rgb565.Blue, rgb565.Black)
		fb.Set(sz.X/2, sz.Y/2, rgb565.Red)
		fb.Clear()
		for y := 0; y < sz.Y; y++ {
			for x := 0; x < sz.X; x++ {
				want := rgb565.Black
				if x == 0 || y == 0 || x == sz.X-1 || y == sz.Y-1 {
					want = rgb565.Blue
				}
				if got := fb.At(x, y); got != want {
					t.Fatalf("%v: At(%d, %d) = %#04x, want %#04x", sz, x, y, got, want)
				}
			}
		}
	}
}

func TestFrameBufferSetOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(image.Rect(0, 0, 8, 6), rgb565.Blue, rgb565.Black)
	before := append([]rgb565.Color(nil), fb.Pix()...)

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 6}, {100, 100}, {-5, -5}} {
		fb.Set(p.X, p.Y, rgb565.White)
	}
	for i, c := range fb.Pix() {
		if c != before[i] {
			t.Fatalf("Pix()[%d] = %#04x after out of bounds writes, want %#04x", i, c, before[i])
		}
	}
	if got := fb.At(-1, 3); got != 0 {
		t.Errorf("At(-1, 3) = %#04x, want 0", got)
	}
}

func TestFrameBufferDrawLine(t *testing.T) {
	fb := NewFrameBuffer(image.Rect(0, 0, 10, 10), rgb565.Blue, rgb565.Black)
	fb.DrawLine(2, 2, 5, 2, rgb565.Red)
	for x := 0; x < 10; x++ {
		want := rgb565.Black
		switch {
		case x == 0 || x == 9:
			want = rgb565.Blue
		case x >= 2 && x <= 5:
			want = rgb565.Red
		}
		if got := fb.At(x, 2); got != want {
			t.Errorf("At(%d, 2) = %#04x, want %#04x", x, got, want)
		}
	}

	// Lines leaving the buffer are clipped cell by cell.
	fb.DrawLine(8, 8, 12, 12, rgb565.Green)
	if got := fb.At(9, 9); got != rgb565.Green {
		t.Errorf("At(9, 9) = %#04x, want green", got)
	}
}

func TestFrameBufferPixRowMajor(t *testing.T) {
	fb := NewFrameBuffer(image.Rect(0, 0, 5, 4), rgb565.Blue, rgb565.Black)
	fb.Set(3, 2, rgb565.Yellow)
	if got := fb.Pix()[2*5+3]; got != rgb565.Yellow {
		t.Errorf("Pix()[13] = %#04x, want yellow", got)
	}
	if n := len(fb.Pix()); n != 20 {
		t.Errorf("len(Pix()) = %d, want 20", n)
	}
}
