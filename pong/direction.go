package pong

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Direction is the heading of the ball along one axis.
type Direction byte

const (
	Negative Direction = iota
	Positive
)

// Step returns the sign of the displacement for the direction.
func (d Direction) Step() float64 {
	if d == Positive {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == Positive {
		return "positive"
	}
	return "negative"
}

// MarshalText encodes the direction for the feed.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction written by MarshalText.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "positive":
		*d = Positive
	case "negative":
		*d = Negative
	default:
		return errors.Wrapf(ErrInvalidArgument, "direction %q", text)
	}
	return nil
}

func randomDirection(rng *rand.Rand) Direction {
	if rng.Intn(2) == 1 {
		return Positive
	}
	return Negative
}
