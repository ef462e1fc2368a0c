// Package config handles application configuration and setup
package config

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachine creates the machine state for a run and loads the image.
// The hex digit font is installed into the interpreter area unless disabled.
func CreateMachine(opts options.Program, image []byte) (*machine.State, error) {
	state := machine.New()
	if !opts.NoFont {
		state.LoadFont()
	}
	if err := state.Load(image); err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	return state, nil
}

// Seed returns the random number generator seed to use, a seed of 0 in the
// options is replaced by a time based seed.
func Seed(opts options.Program, now func() time.Time) uint64 {
	if opts.Seed != 0 {
		return opts.Seed
	}
	return uint64(now().UnixNano())
}
