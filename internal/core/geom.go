// Package core provides fundamental types and utilities for the battleground.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point or displacement in world pixels.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Within reports whether a and b are closer than radius.
// This is the circular collision test used for bullets.
func Within(a, b Vec, radius float64) bool {
	return Dist(a, b) < radius
}

// Heading returns the unit vector for an angle in degrees.
// Zero degrees points right, angles grow clockwise (screen y grows down).
func Heading(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{math.Cos(rad), math.Sin(rad)}
}

// Box is a floating-point axis-aligned bounding box in world pixels.
type Box struct {
	Min  Vec // Top-left corner
	Size Vec // Width and height
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{Min: Vec{x, y}, Size: Vec{w, h}}
}

// BoxAt creates a box of the given size with its top-left at p.
func BoxAt(p, size Vec) Box {
	return Box{Min: p, Size: size}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec {
	return b.Min.Add(b.Size)
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return b.Min.Add(b.Size.Scale(0.5))
}

// Overlaps reports whether two boxes overlap.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	bm, om := b.Max(), o.Max()
	if b.Min.X >= om.X || o.Min.X >= bm.X {
		return false
	}
	if b.Min.Y >= om.Y || o.Min.Y >= bm.Y {
		return false
	}
	return true
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec) bool {
	m := b.Max()
	return p.X >= b.Min.X && p.X <= m.X && p.Y >= b.Min.Y && p.Y <= m.Y
}

// ClampInside returns the top-left position closest to p such that a box of
// the given size stays inside b.
func (b Box) ClampInside(p, size Vec) Vec {
	m := b.Max()
	return Vec{
		X: ClampF(p.X, b.Min.X, m.X-size.X),
		Y: ClampF(p.Y, b.Min.Y, m.Y-size.Y),
	}
}

// Inset shrinks the box by pad on every side.
func (b Box) Inset(pad float64) Box {
	return Box{
		Min:  b.Min.Add(Vec{pad, pad}),
		Size: b.Size.Sub(Vec{2 * pad, 2 * pad}),
	}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
