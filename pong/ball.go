package pong

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Ball moves a fixed step per tick along each axis. Width and Height are
// drawn as full dimensions but act as half extents in collision checks.
type Ball struct {
	Rect
	Speed float64
	DirX  Direction
	DirY  Direction
}

// NewBall creates a ball heading in a random direction on each axis. A nil
// rng falls back to a time seeded source.
func NewBall(rect Rect, speed float64, rng *rand.Rand) (*Ball, error) {
	if !positive(rect.Width) || !positive(rect.Height) {
		return nil, errors.Wrapf(ErrInvalidArgument, "ball size %gx%g", rect.Width, rect.Height)
	}
	if !nonNegative(speed) {
		return nil, errors.Wrapf(ErrInvalidArgument, "ball speed %g", speed)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Ball{
		Rect:  rect,
		Speed: speed,
		DirX:  randomDirection(rng),
		DirY:  randomDirection(rng),
	}, nil
}

// Update advances the ball one step. The step does not depend on delta.
func (b *Ball) Update(_ time.Duration) {
	b.Cx += b.Speed * b.DirX.Step()
	b.Cy += b.Speed * b.DirY.Step()
}

// CheckWallCollision reports whether the leading edge of the ball has
// reached the wall.
func (b *Ball) CheckWallCollision(w *Wall) bool {
	switch w.Side {
	case Bottom:
		return b.Cy+b.Height >= w.Cy
	case Top:
		return b.Cy-b.Height <= w.Cy
	case Left:
		return b.Cx-b.Width <= w.Cx
	case Right:
		return b.Cx+b.Width >= w.Cx
	}
	return false
}

// CheckPlayerCollision reports whether the ball hits the paddle. The ball's
// vertical span must lie entirely within the paddle's; touching the paddle
// with part of the ball above or below it is a miss.
func (b *Ball) CheckPlayerCollision(p *Player) bool {
	if b.Cy-b.Height < p.Cy-p.Height || b.Cy+b.Height > p.Cy+p.Height {
		return false
	}
	if p.Side == Player1 {
		return p.Cx >= b.Cx-p.Width
	}
	return p.Cx <= b.Cx+p.Width
}

// OnWallCollision sends the ball away from the wall it hit.
func (b *Ball) OnWallCollision(side WallSide) {
	switch side {
	case Bottom:
		b.DirY = Negative
	case Top:
		b.DirY = Positive
	case Left:
		b.DirX = Positive
	case Right:
		b.DirX = Negative
	}
}

// OnPlayerCollision sends the ball towards the opposite side of the court.
func (b *Ball) OnPlayerCollision(side PlayerSide) {
	if side == Player1 {
		b.DirX = Positive
	} else {
		b.DirX = Negative
	}
}
