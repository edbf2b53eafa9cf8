package pong

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourt(t *testing.T) *Court {
	t.Helper()
	c, err := NewCourt(DefaultConfig(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return c
}

func TestNewCourtLayout(t *testing.T) {
	c := newTestCourt(t)

	sides := make([]WallSide, 0, 4)
	for _, w := range c.Walls {
		sides = append(sides, w.Side)
	}
	assert.Equal(t, WallSides[:], sides)

	assert.Equal(t, Position{X: 400, Y: 5}, c.Walls[0].Center())
	assert.Equal(t, Position{X: 400, Y: 595}, c.Walls[1].Center())
	assert.Equal(t, Position{X: 5, Y: 300}, c.Walls[2].Center())
	assert.Equal(t, Position{X: 795, Y: 300}, c.Walls[3].Center())

	assert.Equal(t, Position{X: 40, Y: 300}, c.Player1.Rect.Center())
	assert.Equal(t, Position{X: 760, Y: 300}, c.Player2.Rect.Center())
	assert.Equal(t, Position{X: 400, Y: 300}, c.Ball.Rect.Center())
	assert.Equal(t, StartState, c.State)

	_, err := NewCourt(Config{}, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCourtStateTransitions(t *testing.T) {
	c := newTestCourt(t)

	c.TogglePause()
	assert.Equal(t, StartState, c.State, "cannot pause before starting")

	c.Start()
	assert.Equal(t, PlayState, c.State)
	c.TogglePause()
	assert.Equal(t, PauseState, c.State)
	c.Start()
	assert.Equal(t, PauseState, c.State, "start only leaves the start screen")
	c.TogglePause()
	assert.Equal(t, PlayState, c.State)

	c.Reset()
	assert.Equal(t, StartState, c.State)
}

func TestTickOnlyRunsWhilePlaying(t *testing.T) {
	c := newTestCourt(t)
	before := c.Snapshot()

	c.Tick(16, Input{P1Up: true})
	assert.Equal(t, before, c.Snapshot())

	c.Start()
	c.TogglePause()
	c.Tick(16, Input{P1Up: true})
	assert.Equal(t, before.Ball, c.Snapshot().Ball)
}

func TestTickMovesBallAndPaddles(t *testing.T) {
	c := newTestCourt(t)
	c.Start()
	c.Ball.DirX, c.Ball.DirY = Positive, Negative

	c.Tick(16, Input{P1Up: true, P2Down: true})

	assert.Equal(t, 404.0, c.Ball.Cx)
	assert.Equal(t, 296.0, c.Ball.Cy)
	assert.Equal(t, 294.0, c.Player1.Cy)
	assert.Equal(t, 306.0, c.Player2.Cy)
}

func TestTickBouncesBeforeMoving(t *testing.T) {
	c := newTestCourt(t)
	c.Start()

	// touching the top wall while heading up: the bounce applies to this tick
	c.Ball.Cx, c.Ball.Cy = 400, 13
	c.Ball.DirX, c.Ball.DirY = Positive, Negative
	c.Tick(16, Input{})

	assert.Equal(t, Positive, c.Ball.DirY)
	assert.Equal(t, 17.0, c.Ball.Cy)
}

func TestTickPaddleHitCountsRally(t *testing.T) {
	c := newTestCourt(t)
	c.Start()

	c.Ball.Cx, c.Ball.Cy = 48, 300
	c.Ball.DirX, c.Ball.DirY = Negative, Positive

	for i := 0; i < 10; i++ {
		c.Tick(16, Input{})
	}
	assert.Equal(t, Positive, c.Ball.DirX)
	assert.Equal(t, 1, c.Rally)
	assert.Greater(t, c.Ball.Cx, 48.0)
}

func TestTickMissedPaddleBouncesOffWall(t *testing.T) {
	c := newTestCourt(t)
	c.Start()

	// ball well above the left paddle's reach
	c.Ball.Cx, c.Ball.Cy = 30, 100
	c.Ball.DirX, c.Ball.DirY = Negative, Positive

	for i := 0; i < 10; i++ {
		c.Tick(16, Input{})
	}
	assert.Equal(t, Positive, c.Ball.DirX, "left wall sends it back")
	assert.Equal(t, 0, c.Rally)
}

func TestBallStaysOnCourt(t *testing.T) {
	c := newTestCourt(t)
	c.Start()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		c.Tick(16, Input{
			P1Up: rng.Intn(2) == 0, P1Down: rng.Intn(2) == 0,
			P2Up: rng.Intn(2) == 0, P2Down: rng.Intn(2) == 0,
		})
		require.True(t, c.Ball.Cx > 0 && c.Ball.Cx < 800, "tick %d: cx %g", i, c.Ball.Cx)
		require.True(t, c.Ball.Cy > 0 && c.Ball.Cy < 600, "tick %d: cy %g", i, c.Ball.Cy)
		for _, p := range c.Players() {
			require.GreaterOrEqual(t, p.Cy-p.Height/2, 10.0)
			require.LessOrEqual(t, p.Cy+p.Height/2, 590.0)
		}
	}
}

func TestCourtReset(t *testing.T) {
	c := newTestCourt(t)
	c.Start()
	c.Ball.Cx, c.Ball.Cy = 100, 100
	c.Player1.Cy = 50
	c.Rally = 4

	c.Reset()
	assert.Equal(t, Position{X: 400, Y: 300}, c.Ball.Rect.Center())
	assert.Equal(t, 300.0, c.Player1.Cy)
	assert.Equal(t, 300.0, c.Player2.Cy)
	assert.Zero(t, c.Rally)
}

func TestCourtDrawOrder(t *testing.T) {
	c := newTestCourt(t)
	rec := &recorder{}
	c.Draw(rec)

	require.Len(t, rec.rects, 7)
	assert.Len(t, rec.colors, 7)
	assert.Equal(t, [4]float64{400, 5, 800, 10}, rec.rects[0])
	assert.Equal(t, [4]float64{40, 300, 10, 80}, rec.rects[4])
	assert.Equal(t, [4]float64{400, 300, 8, 8}, rec.rects[6])
}

func TestSnapshotJSON(t *testing.T) {
	c := newTestCourt(t)
	c.Start()
	c.Ball.DirX, c.Ball.DirY = Negative, Positive
	c.Rally = 2

	data, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "play", raw["status"])
	ball := raw["ball"].(map[string]interface{})
	assert.Equal(t, "negative", ball["dirX"])
	assert.Equal(t, 400.0, ball["x"])

	var back Snapshot
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c.Snapshot(), back)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"over"}`), &back))
}
