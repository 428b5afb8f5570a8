// Package raster converts line segments into pixel positions using integer
// arithmetic only.
//
// The same rasterizer feeds both the in-memory frame buffer and the panel
// driver, so a segment drawn into one lands on exactly the same cells in the
// other.
package raster

import "image"

// thin and thick hold the pen footprints returned by Pen.
var (
	thin  = []image.Point{{0, 0}}
	thick = []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Pen returns the offsets at which a stroke is repeated. A thick pen is a
// 2x2 footprint made of four parallel one pixel lines.
//
// The returned slice must not be modified.
func Pen(isThick bool) []image.Point {
	if isThick {
		return thick
	}
	return thin
}

// Line calls plot for every cell on the segment from (x0, y0) to (x1, y1),
// both endpoints included, in order from the first endpoint to the second.
//
// Consecutive cells are 8-connected. When both endpoints coincide plot is
// called exactly once.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Points returns the cells of the segment from p0 to p1 as computed by Line.
func Points(p0, p1 image.Point) []image.Point {
	n := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
	pts := make([]image.Point, 0, n)
	Line(p0.X, p0.Y, p1.X, p1.Y, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
