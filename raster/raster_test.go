package raster

import (
	"image"
	"testing"
)

func TestLineDegenerate(t *testing.T) {
	pts := Points(image.Pt(7, 3), image.Pt(7, 3))
	if len(pts) != 1 || pts[0] != image.Pt(7, 3) {
		t.Errorf("Points(7,3 -> 7,3) = %v, want [(7,3)]", pts)
	}
}

func TestLineAxisAligned(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   []image.Point
	}{
		{"right", image.Pt(80, 64), image.Pt(82, 64), []image.Point{{80, 64}, {81, 64}, {82, 64}}},
		{"left", image.Pt(2, 5), image.Pt(0, 5), []image.Point{{2, 5}, {1, 5}, {0, 5}}},
		{"down", image.Pt(4, 1), image.Pt(4, 3), []image.Point{{4, 1}, {4, 2}, {4, 3}}},
		{"up", image.Pt(4, 3), image.Pt(4, 1), []image.Point{{4, 3}, {4, 2}, {4, 1}}},
		{"diagonal", image.Pt(0, 0), image.Pt(3, 3), []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti-diagonal", image.Pt(3, 0), image.Pt(0, 3), []image.Point{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.p0, tt.p1)
			if len(got) != len(tt.want) {
				t.Fatalf("Points() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Points()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Every segment between cells of a small grid must start and end on its
// endpoints, step by at most one cell per axis, never repeat a cell and move
// monotonically towards the end.
func TestLineConnected(t *testing.T) {
	const n = 9
	for x0 := 0; x0 < n; x0++ {
		for y0 := 0; y0 < n; y0++ {
			for x1 := 0; x1 < n; x1++ {
				for y1 := 0; y1 < n; y1++ {
					checkSegment(t, image.Pt(x0, y0), image.Pt(x1, y1))
				}
			}
		}
	}
}

func TestLineLong(t *testing.T) {
	checkSegment(t, image.Pt(2, 2), image.Pt(158, 126))
	checkSegment(t, image.Pt(158, 2), image.Pt(2, 125))
	checkSegment(t, image.Pt(0, 0), image.Pt(159, 1))
}

func checkSegment(t *testing.T, p0, p1 image.Point) {
	t.Helper()
	pts := Points(p0, p1)
	if len(pts) == 0 {
		t.Fatalf("%v -> %v: no cells plotted", p0, p1)
	}
	if want := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1; len(pts) != want {
		t.Fatalf("%v -> %v: %d cells plotted, want %d", p0, p1, len(pts), want)
	}
	if pts[0] != p0 || pts[len(pts)-1] != p1 {
		t.Fatalf("%v -> %v: endpoints = %v, %v", p0, p1, pts[0], pts[len(pts)-1])
	}
	seen := make(map[image.Point]bool, len(pts))
	for i, p := range pts {
		if seen[p] {
			t.Fatalf("%v -> %v: cell %v plotted twice", p0, p1, p)
		}
		seen[p] = true
		if i == 0 {
			continue
		}
		d := p.Sub(pts[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 {
			t.Fatalf("%v -> %v: gap between %v and %v", p0, p1, pts[i-1], p)
		}
		if d.X*(p1.X-p0.X) < 0 || d.Y*(p1.Y-p0.Y) < 0 {
			t.Fatalf("%v -> %v: step %v moves away from the end", p0, p1, d)
		}
	}
}

func TestPen(t *testing.T) {
	if got := Pen(false); len(got) != 1 || got[0] != (image.Point{}) {
		t.Errorf("Pen(false) = %v, want [(0,0)]", got)
	}
	want := []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	got := Pen(true)
	if len(got) != len(want) {
		t.Fatalf("Pen(true) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pen(true)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
