// Package core provides fundamental types and utilities shared by the game and the terminal front end.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Box is a centre-anchored axis-aligned bounding box in world units.
// The simulation uses it for collision; Rect is used for cell drawing.
type Box struct {
	X, Y float64 // Centre
	W, H float64 // Full extents
}

// BoxAt creates a box centred at (x, y) with the given size.
func BoxAt(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Overlaps reports whether two boxes overlap on both axes.
// Touching edges count as an overlap.
func (b Box) Overlaps(other Box) bool {
	return math.Abs(b.X-other.X) <= (b.W+other.W)/2 &&
		math.Abs(b.Y-other.Y) <= (b.H+other.H)/2
}

// Rect is an integer cell rectangle used for drawing on a Screen.
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
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
