package panzoom

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Transform is the affine map between world space and screen space:
//
//	screen = world * Scale + (TranslateX, TranslateY)
//
// Scale is uniform on both axes. A Transform is a plain value; the
// Controller hands out copies, never references to its own state.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// IdentityTransform returns the transform that maps world to screen 1:1.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Translation returns the translate components as a point.
func (t Transform) Translation() Point {
	return Point{X: t.TranslateX, Y: t.TranslateY}
}

// WorldToScreen maps a world-space point to screen space.
func (t Transform) WorldToScreen(w Point) Point {
	return Point{
		X: w.X*t.Scale + t.TranslateX,
		Y: w.Y*t.Scale + t.TranslateY,
	}
}

// ScreenToWorld maps a screen-space point to world space.
// The result is undefined for a zero Scale.
func (t Transform) ScreenToWorld(s Point) Point {
	return Point{
		X: (s.X - t.TranslateX) / t.Scale,
		Y: (s.Y - t.TranslateY) / t.Scale,
	}
}

// ZoomAt returns the transform with the given scale whose translation keeps
// the world point currently under anchor (screen space) under anchor.
func (t Transform) ZoomAt(anchor Point, scale float64) Transform {
	w := t.ScreenToWorld(anchor)
	return Transform{
		TranslateX: anchor.X - w.X*scale,
		TranslateY: anchor.Y - w.Y*scale,
		Scale:      scale,
	}
}

// Matrix returns the equivalent gg affine matrix, for drawing world
// content into a screen-sized gg.Context.
func (t Transform) Matrix() gg.Matrix {
	return gg.Matrix{
		A: t.Scale, B: 0, C: t.TranslateX,
		D: 0, E: t.Scale, F: t.TranslateY,
	}
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%g, %g) scale(%g)", t.TranslateX, t.TranslateY, t.Scale)
}

// ClampScale limits s to [lo, hi].
func ClampScale(s, lo, hi float64) float64 {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}
