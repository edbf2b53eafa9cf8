package pong

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// PlayerSide identifies a paddle and the half of the court it defends.
type PlayerSide byte

const (
	Player1 PlayerSide = iota // left paddle
	Player2                   // right paddle
)

func (s PlayerSide) String() string {
	switch s {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return fmt.Sprintf("PlayerSide(%d)", byte(s))
}

// Player is a paddle. It moves vertically between MinY and MaxY.
type Player struct {
	Rect
	Side  PlayerSide
	Speed float64
	MinY  float64
	MaxY  float64
}

// NewPlayer creates a paddle. The paddle must fit between minY and maxY.
func NewPlayer(side PlayerSide, rect Rect, speed, minY, maxY float64) (*Player, error) {
	if side > Player2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "player side %d", byte(side))
	}
	if !positive(rect.Width) || !positive(rect.Height) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s paddle size %gx%g", side, rect.Width, rect.Height)
	}
	if !nonNegative(speed) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s paddle speed %g", side, speed)
	}
	if maxY-minY < rect.Height {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s paddle of height %g does not fit in [%g, %g]", side, rect.Height, minY, maxY)
	}
	p := &Player{Rect: rect, Side: side, Speed: speed, MinY: minY, MaxY: maxY}
	p.Cy = p.clampY(p.Cy)
	return p, nil
}

// MoveUp moves the paddle towards MinY.
func (p *Player) MoveUp() {
	p.Cy = p.clampY(p.Cy - p.Speed)
}

// MoveDown moves the paddle towards MaxY.
func (p *Player) MoveDown() {
	p.Cy = p.clampY(p.Cy + p.Speed)
}

// Update applies the keys held during this tick. Holding both keys cancels out.
func (p *Player) Update(_ time.Duration, up, down bool) {
	switch {
	case up && !down:
		p.MoveUp()
	case down && !up:
		p.MoveDown()
	}
}

// Recenter places the paddle in the middle of its track.
func (p *Player) Recenter() {
	p.Cy = (p.MinY + p.MaxY) / 2
}

func (p *Player) clampY(y float64) float64 {
	half := p.Height / 2
	return clamp(y, p.MinY+half, p.MaxY-half)
}
