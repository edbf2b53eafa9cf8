package pong

// PaddleSnapshot is the wire form of a paddle.
type PaddleSnapshot struct {
	Position
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BallSnapshot is the wire form of the ball.
type BallSnapshot struct {
	Position
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Speed  float64   `json:"speed"`
	DirX   Direction `json:"dirX"`
	DirY   Direction `json:"dirY"`
}

// Snapshot is a copy of the court state that can leave the game loop.
type Snapshot struct {
	Player1 PaddleSnapshot `json:"player1"`
	Player2 PaddleSnapshot `json:"player2"`
	Ball    BallSnapshot   `json:"ball"`
	Rally   int            `json:"rally"`
	State   GameState      `json:"status"`
}

// Snapshot copies the current court state.
func (c *Court) Snapshot() Snapshot {
	paddle := func(p *Player) PaddleSnapshot {
		return PaddleSnapshot{Position: p.Rect.Center(), Width: p.Width, Height: p.Height}
	}
	b := c.Ball
	return Snapshot{
		Player1: paddle(c.Player1),
		Player2: paddle(c.Player2),
		Ball: BallSnapshot{
			Position: b.Rect.Center(),
			Width:    b.Width,
			Height:   b.Height,
			Speed:    b.Speed,
			DirX:     b.DirX,
			DirY:     b.DirY,
		},
		Rally: c.Rally,
		State: c.State,
	}
}
