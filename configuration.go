package astiremux

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when the command line arguments are invalid
var ErrUsage = errors.New("astiremux: invalid usage")

// Configuration represents a remuxer configuration
type Configuration struct {
	InputURL  string
	OutputURL string
}

// NewConfigurationFromArgs creates a configuration out of positional arguments (program name excluded)
func NewConfigurationFromArgs(args []string) (c Configuration, err error) {
	if len(args) < 2 {
		err = fmt.Errorf("astiremux: 2 arguments expected, got %d: %w", len(args), ErrUsage)
		return
	}
	c = Configuration{
		InputURL:  args[0],
		OutputURL: args[1],
	}
	return
}
