// Package core provides fundamental types and utilities shared by the game
// variants, the session state machine and the platform adapters.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position on the playfield, in pixels.
type Point struct {
	X, Y float64
}

// Hitbox is an axis-aligned rectangle on the playfield used for collision
// detection. X and Y are the top-left corner.
type Hitbox struct {
	X, Y float64
	W, H float64
}

// NewHitbox creates a hitbox from its top-left corner and size.
// Negative sizes are clamped to zero.
func NewHitbox(x, y, w, h float64) Hitbox {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Hitbox{X: x, Y: y, W: w, H: h}
}

// HitboxFromCenter creates a hitbox of the given size centered on (cx, cy).
func HitboxFromCenter(cx, cy, w, h float64) Hitbox {
	hb := NewHitbox(0, 0, w, h)
	hb.X = cx - hb.W/2
	hb.Y = cy - hb.H/2
	return hb
}

// Left returns the x-coordinate of the left edge.
func (h Hitbox) Left() float64 {
	return h.X
}

// Right returns the x-coordinate of the right edge.
func (h Hitbox) Right() float64 {
	return h.X + h.W
}

// Top returns the y-coordinate of the top edge.
func (h Hitbox) Top() float64 {
	return h.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (h Hitbox) Bottom() float64 {
	return h.Y + h.H
}

// Center returns the center point of the hitbox.
func (h Hitbox) Center() Point {
	return Point{X: h.X + h.W/2, Y: h.Y + h.H/2}
}

// Overlaps returns true if this hitbox overlaps with another.
// Touching edges do not count as an overlap.
func (h Hitbox) Overlaps(other Hitbox) bool {
	return Overlaps(h, other)
}

// ContainsPoint returns true if p lies inside the hitbox.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (h Hitbox) ContainsPoint(p Point) bool {
	return p.X >= h.Left() && p.X < h.Right() && p.Y >= h.Top() && p.Y < h.Bottom()
}

// Overlaps is the standard AABB overlap test.
func Overlaps(a, b Hitbox) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// Rect is an integer rectangle in screen cells, used by the render target.
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
