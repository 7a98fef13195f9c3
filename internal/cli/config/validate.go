package config

import (
	"fmt"
	"strings"

	intconfig "github.com/leapstack-labs/lutlib/internal/config"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !intconfig.ValidLutSize(c.LutSize) {
		return fmt.Errorf("lut_size %d is not a built-in preset (supported: 3..10)", c.LutSize)
	}
	if !intconfig.ValidOutput(c.Output) {
		return fmt.Errorf("unknown output format %q (supported: %s)", c.Output, strings.Join(intconfig.OutputModes, ", "))
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}
