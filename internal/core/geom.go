// Package core provides the fundamental types shared by the runner and its
// terminal drivers. It contains no terminal library imports so game logic
// stays pure and testable.
package core

// Rect is a rectangle on the character grid, X/Y being the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
