// Package geometry maps board squares to pixel space and computes the arrow
// overlay. Everything here is a pure function of its arguments.
package geometry

import "math"

// Point is a pixel position, origin at the top-left corner of the board.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the euclidean length of p taken as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Perp returns p rotated by 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rect is an axis-aligned region in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle. The right and
// bottom edges belong to the next cell, as in SquareAtPoint.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
