package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")
	logger.Debug("hidden")
	logger.Info("shown", slog.Int("size", 6))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "size=6")
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidLutSize(3))
	assert.True(t, ValidLutSize(10))
	assert.False(t, ValidLutSize(2))
	assert.False(t, ValidLutSize(11))

	for _, mode := range OutputModes {
		assert.True(t, ValidOutput(mode), mode)
	}
	assert.False(t, ValidOutput("xml"))
	assert.False(t, ValidOutput(""))
}
