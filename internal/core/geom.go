// Package core holds the types shared by cartridges and platforms: palette
// colours, the pad snapshot, the terminal cell buffer and a few geometry
// helpers. It imports nothing outside the standard library.
package core

// RectF is an axis-aligned box in world pixels used for hit-testing.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a box from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if the boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
