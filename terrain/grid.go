package terrain

import (
	"image"
	"math"
)

// Point is a position in world coordinates (one grid cell per unit).
type Point struct {
	X, Y float64
}

// Grid is an immutable, row-major table of terrain classes decoded from a
// color-coded image. It is safe for concurrent reads after construction.
type Grid struct {
	width  int
	height int
	cells  []Class
}

// NewGrid decodes img row-major into a classification grid. Every pixel
// color must match a palette entry exactly; the first mismatch aborts
// construction with a *PaletteError. The image is not retained.
func NewGrid(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cells := make([]Class, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			key := RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			class, ok := Palette[key]
			if !ok {
				return nil, &PaletteError{X: x, Y: y, Color: key}
			}
			cells[y*w+x] = class
		}
	}
	return &Grid{width: w, height: h, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// ClassificationAt floors x,y to cell coordinates and returns that cell's
// class. Anything outside the grid is SOLID: the world boundary acts as an
// implicit wall, so motion can never escape the grid.
func (g *Grid) ClassificationAt(x, y float64) Class {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	if cx < 0 || cy < 0 || cx >= g.width || cy >= g.height {
		return ClassSolid
	}
	return g.cells[cy*g.width+cx]
}

// TestLine samples steps+1 equally spaced points from start to end,
// inclusive of both endpoints, and reports whether any sampled point
// satisfies pred. It short-circuits on the first match. steps controls
// sampling density; with steps 0 only start is tested.
func (g *Grid) TestLine(start, end Point, pred func(Class) bool, steps int) bool {
	if steps <= 0 {
		return pred(g.ClassificationAt(start.X, start.Y))
	}
	dx := (end.X - start.X) / float64(steps)
	dy := (end.Y - start.Y) / float64(steps)
	for i := 0; i <= steps; i++ {
		x := start.X + dx*float64(i)
		y := start.Y + dy*float64(i)
		if pred(g.ClassificationAt(x, y)) {
			return true
		}
	}
	return false
}
