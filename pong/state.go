package pong

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
)

// GameState is an enum that represents all possible game states
type GameState byte

const (
	StartState GameState = iota
	PlayState
	PauseState
)

func (s GameState) String() string {
	switch s {
	case StartState:
		return "start"
	case PlayState:
		return "play"
	case PauseState:
		return "pause"
	}
	return fmt.Sprintf("GameState(%d)", byte(s))
}

// MarshalText encodes the state for the feed.
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state written by MarshalText.
func (s *GameState) UnmarshalText(text []byte) error {
	for _, st := range []GameState{StartState, PlayState, PauseState} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidArgument, "game state %q", text)
}

var (
	BgColor  = color.Black
	ObjColor = color.RGBA{120, 226, 160, 255}
)
