// Package core provides the platform primitives shared by the game driver and
// the terminal front end: cell geometry, the screen buffer, input actions and
// runtime configuration. It has no external dependencies (especially no Bubble
// Tea) so game code stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if the rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a continuous canvas onto a rectangle of cells.
// Canvas coordinates grow right and down, like screen cells.
type Viewport struct {
	CanvasW, CanvasH float64
	Cells            Rect
}

// Point converts a canvas point to the cell that contains it.
func (v Viewport) Point(x, y float64) (int, int) {
	cx := v.Cells.X + int(math.Floor(x*float64(v.Cells.W)/v.CanvasW))
	cy := v.Cells.Y + int(math.Floor(y*float64(v.Cells.H)/v.CanvasH))
	return cx, cy
}

// Box converts a canvas rectangle to cells. A non-empty canvas rectangle
// always covers at least one cell in each direction.
func (v Viewport) Box(x, y, w, h float64) Rect {
	left, top := v.Point(x, y)
	right, bottom := v.Point(x+w, y+h)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	return NewRect(left, top, right-left, bottom-top)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
