package pong

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Input holds the paddle keys held during a tick.
type Input struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

// Court owns every entity of a game session. It is not safe for concurrent
// use; the game loop is its only caller.
type Court struct {
	Walls   [4]*Wall
	Player1 *Player
	Player2 *Player
	Ball    *Ball
	State   GameState
	Rally   int

	cfg Config
	rng *rand.Rand
}

// NewCourt lays out walls, paddles and ball for cfg. A nil rng falls back
// to a time seeded source.
func NewCourt(cfg Config, rng *rand.Rand) (*Court, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Court{State: StartState, cfg: cfg, rng: rng}

	w, h, t := cfg.Width, cfg.Height, cfg.WallThickness
	bounds := map[WallSide]Rect{
		Top:    {Cx: w / 2, Cy: t / 2, Width: w, Height: t, Color: ObjColor},
		Bottom: {Cx: w / 2, Cy: h - t/2, Width: w, Height: t, Color: ObjColor},
		Left:   {Cx: t / 2, Cy: h / 2, Width: t, Height: h, Color: ObjColor},
		Right:  {Cx: w - t/2, Cy: h / 2, Width: t, Height: h, Color: ObjColor},
	}
	for i, side := range WallSides {
		wall, err := NewWall(side, bounds[side])
		if err != nil {
			return nil, err
		}
		c.Walls[i] = wall
	}

	var err error
	pc := cfg.Paddle
	if c.Player1, err = c.newPlayer(Player1, t+pc.Inset); err != nil {
		return nil, err
	}
	if c.Player2, err = c.newPlayer(Player2, w-t-pc.Inset); err != nil {
		return nil, err
	}

	rect, err := NewRect(w/2, h/2, cfg.Ball.Width, cfg.Ball.Height, ObjColor)
	if err != nil {
		return nil, errors.Wrap(err, "ball")
	}
	if c.Ball, err = NewBall(rect, cfg.Ball.Speed, rng); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Court) newPlayer(side PlayerSide, cx float64) (*Player, error) {
	pc := c.cfg.Paddle
	rect, err := NewRect(cx, c.cfg.Height/2, pc.Width, pc.Height, ObjColor)
	if err != nil {
		return nil, errors.Wrap(err, side.String())
	}
	return NewPlayer(side, rect, pc.Speed, c.cfg.WallThickness, c.cfg.Height-c.cfg.WallThickness)
}

// Config returns the settings the court was built from.
func (c *Court) Config() Config {
	return c.cfg
}

// Start begins play from the start screen.
func (c *Court) Start() {
	if c.State == StartState {
		c.State = PlayState
	}
}

// TogglePause switches between play and pause. It has no effect on the
// start screen.
func (c *Court) TogglePause() {
	switch c.State {
	case PlayState:
		c.State = PauseState
	case PauseState:
		c.State = PlayState
	}
}

// Reset puts the ball back in the middle with a new random heading, centers
// both paddles and returns to the start screen.
func (c *Court) Reset() {
	c.Ball.Cx, c.Ball.Cy = c.cfg.Width/2, c.cfg.Height/2
	c.Ball.DirX = randomDirection(c.rng)
	c.Ball.DirY = randomDirection(c.rng)
	c.Player1.Recenter()
	c.Player2.Recenter()
	c.Rally = 0
	c.State = StartState
}

// Tick runs one update. Collisions are resolved before the ball moves so a
// bounce is visible in the same frame.
func (c *Court) Tick(delta time.Duration, in Input) {
	if c.State != PlayState {
		return
	}

	c.Player1.Update(delta, in.P1Up, in.P1Down)
	c.Player2.Update(delta, in.P2Up, in.P2Down)

	for _, w := range c.Walls {
		if c.Ball.CheckWallCollision(w) {
			c.Ball.OnWallCollision(w.Side)
		}
	}
	for _, p := range c.Players() {
		if !c.Ball.CheckPlayerCollision(p) {
			continue
		}
		before := c.Ball.DirX
		c.Ball.OnPlayerCollision(p.Side)
		if c.Ball.DirX != before {
			c.Rally++
		}
	}

	c.Ball.Update(delta)
}

// Players returns both paddles, left first.
func (c *Court) Players() [2]*Player {
	return [2]*Player{c.Player1, c.Player2}
}

// Draw renders walls, paddles and ball in that order.
func (c *Court) Draw(r Renderer) {
	for _, w := range c.Walls {
		w.Draw(r)
	}
	for _, p := range c.Players() {
		p.Draw(r)
	}
	c.Ball.Draw(r)
}
