package pong

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// Position is a set of coordinates in 2-D plan
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the shape shared by every entity on the court. Cx and Cy are the
// center of the rectangle.
type Rect struct {
	Cx, Cy        float64
	Width, Height float64
	Color         color.Color
}

// NewRect validates the dimensions and returns the rectangle.
func NewRect(cx, cy, width, height float64, clr color.Color) (Rect, error) {
	if !positive(width) || !positive(height) {
		return Rect{}, errors.Wrapf(ErrInvalidArgument, "rect size %gx%g", width, height)
	}
	if math.IsNaN(cx) || math.IsNaN(cy) {
		return Rect{}, errors.Wrapf(ErrInvalidArgument, "rect center (%g, %g)", cx, cy)
	}
	if clr == nil {
		clr = ObjColor
	}
	return Rect{Cx: cx, Cy: cy, Width: width, Height: height, Color: clr}, nil
}

// Center returns the rectangle center.
func (r Rect) Center() Position {
	return Position{X: r.Cx, Y: r.Cy}
}

// Draw fills the rectangle with its color.
func (r Rect) Draw(dst Renderer) {
	dst.SetColor(r.Color)
	dst.FillRect(r.Cx, r.Cy, r.Width, r.Height)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// nonNegative reports whether v is a finite value >= 0.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
