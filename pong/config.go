package pong

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config describes the court and the entities placed on it. Lengths are in
// pixels and speeds in pixels per tick.
type Config struct {
	Width         float64      `toml:"width"`
	Height        float64      `toml:"height"`
	WallThickness float64      `toml:"wall_thickness"`
	Paddle        PaddleConfig `toml:"paddle"`
	Ball          BallConfig   `toml:"ball"`
}

type PaddleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Inset  float64 `toml:"inset"`
	Speed  float64 `toml:"speed"`
}

type BallConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		WallThickness: 10,
		Paddle: PaddleConfig{
			Width:  10,
			Height: 80,
			Inset:  30,
			Speed:  6,
		},
		Ball: BallConfig{
			Width:  8,
			Height: 8,
			Speed:  4,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Wrapf(ErrInvalidArgument, "config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every entity fits on the court.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"wall_thickness", c.WallThickness},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.width", c.Ball.Width},
		{"ball.height", c.Ball.Height},
	}
	for _, chk := range checks {
		if !positive(chk.value) {
			return errors.Wrapf(ErrInvalidArgument, "config %s must be positive, got %g", chk.name, chk.value)
		}
	}
	if !nonNegative(c.Paddle.Speed) || !nonNegative(c.Ball.Speed) {
		return errors.Wrapf(ErrInvalidArgument, "config speeds must be finite and not negative (paddle %g, ball %g)", c.Paddle.Speed, c.Ball.Speed)
	}
	if !nonNegative(c.Paddle.Inset) || 2*(c.WallThickness+c.Paddle.Inset) >= c.Width {
		return errors.Wrapf(ErrInvalidArgument, "config paddle.inset %g leaves no room between paddles", c.Paddle.Inset)
	}
	if c.Paddle.Height > c.Height-2*c.WallThickness {
		return errors.Wrapf(ErrInvalidArgument, "config paddle.height %g taller than the court", c.Paddle.Height)
	}
	// the ball's size acts as half extents against the walls; a ball touching
	// both opposite walls at once never bounces back
	if 2*c.Ball.Width >= c.Width-2*c.WallThickness {
		return errors.Wrapf(ErrInvalidArgument, "config ball.width %g too wide for the court", c.Ball.Width)
	}
	if 2*c.Ball.Height >= c.Height-2*c.WallThickness {
		return errors.Wrapf(ErrInvalidArgument, "config ball.height %g too tall for the court", c.Ball.Height)
	}
	return nil
}
