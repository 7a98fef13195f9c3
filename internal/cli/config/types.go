// Package config provides configuration management for the lutlib CLI.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	// Library is the default library file used when a command gets no path.
	Library string `koanf:"library"`
	// LutSize selects the built-in preset used when no library file is set.
	LutSize   int     `koanf:"lut_size"`
	Output    string  `koanf:"output"`
	LogLevel  string  `koanf:"log_level"`
	Verbose   bool    `koanf:"verbose"`
	Strict    bool    `koanf:"strict"`
	Tolerance float64 `koanf:"tolerance"`
	// WatchDebounce is how long watch waits for a burst of writes to settle.
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`

	configFile string
}

// EffectiveLogLevel returns the log level, forced to debug in verbose mode.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}
