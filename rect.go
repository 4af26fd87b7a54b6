package panzoom

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Width and Height are non-negative for every Rect built by this package.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// NewRectFromPoints creates the rectangle spanned by two corner points.
// The points are normalized so the result never has a negative size.
func NewRectFromPoints(p1, p2 Point) Rect {
	return Rect{
		Left:   math.Min(p1.X, p2.X),
		Top:    math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point is inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	r.Left += d.X
	r.Top += d.Y
	return r
}

// ClampInside returns r moved (never resized) so that it lies within
// bounds. When r is larger than bounds along an axis it is aligned to the
// bounds' leading edge on that axis.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.Left = clampAxis(r.Left, r.Width, bounds.Left, bounds.Width)
	r.Top = clampAxis(r.Top, r.Height, bounds.Top, bounds.Height)
	return r
}

func clampAxis(pos, size, lo, span float64) float64 {
	if pos+size > lo+span {
		pos = lo + span - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}
