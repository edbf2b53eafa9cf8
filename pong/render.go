package pong

import "image/color"

// Renderer is the drawing surface the host library provides. FillRect takes
// the rectangle center, not its corner.
type Renderer interface {
	SetColor(clr color.Color)
	FillRect(cx, cy, width, height float64)
}
