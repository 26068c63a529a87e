// Package core provides fundamental types and utilities shared by the engine
// and the terminal front end. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Vec is an integer grid position or offset.
// X grows to the right, Y grows downward (screen coordinates).
type Vec struct {
	X int
	Y int
}

// V is a convenience constructor for Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Shift returns a new Vec offset by (dx, dy).
func (v Vec) Shift(dx, dy int) Vec {
	return Vec{X: v.X + dx, Y: v.Y + dy}
}

// RotateCW rotates v a quarter turn clockwise around pivot.
// With Y pointing down, (x, y) -> (-y, x) turns right into down,
// which is clockwise on screen.
func (v Vec) RotateCW(pivot Vec) Vec {
	rel := v.Sub(pivot)
	return pivot.Add(Vec{X: -rel.Y, Y: rel.X})
}

// RotateCCW is the inverse of RotateCW: (x, y) -> (y, -x) around pivot.
func (v Vec) RotateCCW(pivot Vec) Vec {
	rel := v.Sub(pivot)
	return pivot.Add(Vec{X: rel.Y, Y: -rel.X})
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
