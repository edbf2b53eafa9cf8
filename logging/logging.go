// Package logging builds the zap logger shared by the game driver and the feed.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavour.
type Options struct {
	// Level is a zap level name ("debug", "info", ...). Unknown names fall
	// back to info.
	Level string
	// Development switches to the colored console encoder.
	Development bool
}

// New creates a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	// a 60 TPS loop would trip the default sampler on per-tick debug lines
	cfg.Sampling = nil

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
