package pong

import "github.com/pkg/errors"

// ErrInvalidArgument is returned by constructors given values an entity can
// never hold, such as a non-positive width.
var ErrInvalidArgument = errors.New("invalid argument")
