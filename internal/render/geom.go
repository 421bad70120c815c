package render

import "math"

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Circle is a disc described by its centre and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) valid() bool {
	return c.Center.finite() && !math.IsNaN(c.Radius) && !math.IsInf(c.Radius, 0) && c.Radius >= 0
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Dx()/2, Y: r.Min.Y + r.Dy()/2}
}
