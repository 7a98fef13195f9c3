// Package config holds configuration defaults shared by the CLI and tests.
package config

import (
	"slices"
	"time"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// Default configuration values.
const (
	DefaultLutSize   = 6
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel  = "warn"
	DefaultTolerance = 0.005 // half of the last digit printed by the renderer

	DefaultWatchDebounce = 100 * time.Millisecond
)

// ConfigFileNames lists the config file names searched for, in order.
var ConfigFileNames = []string{"lutlib.yaml", "lutlib.yml"}

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// ValidLutSize reports whether n names a built-in preset.
func ValidLutSize(n int) bool {
	return n >= lutlib.MinSimpleSize && n <= lutlib.MaxSimpleSize
}

// ValidOutput reports whether mode is one of OutputModes.
func ValidOutput(mode string) bool {
	return slices.Contains(OutputModes, mode)
}
