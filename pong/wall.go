package pong

import (
	"fmt"

	"github.com/pkg/errors"
)

// WallSide identifies one of the four court boundaries.
type WallSide byte

const (
	Top WallSide = iota
	Bottom
	Left
	Right
)

// WallSides lists every boundary in drawing order.
var WallSides = [...]WallSide{Top, Bottom, Left, Right}

func (s WallSide) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("WallSide(%d)", byte(s))
}

func (s WallSide) valid() bool {
	return s <= Right
}

// Wall is a static court boundary.
type Wall struct {
	Rect
	Side WallSide
}

// NewWall creates the boundary on the given side.
func NewWall(side WallSide, rect Rect) (*Wall, error) {
	if !side.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "wall side %d", byte(side))
	}
	if !positive(rect.Width) || !positive(rect.Height) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s wall size %gx%g", side, rect.Width, rect.Height)
	}
	return &Wall{Rect: rect, Side: side}, nil
}
