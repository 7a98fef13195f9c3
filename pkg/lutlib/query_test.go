package lutlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinDelayQueries_NilLibrary(t *testing.T) {
	var lib *Library
	assert.Equal(t, 1.0, lib.FastestPinDelay())
	assert.Equal(t, 1.0, lib.SlowestPinDelay())
}

func TestPinDelayQueries(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantFastest float64
		wantSlowest float64
	}{
		{
			name:        "uniform reads pin 0 of the largest LUT",
			src:         "1 0 0.5\n2 1 0.7\n3 1 0.9\n",
			wantFastest: 0.9,
			wantSlowest: 0.9,
		},
		{
			name:        "variable reads first and last pin of the largest LUT",
			src:         "1 0 1\n2 1 1 2\n3 1 1 2 3\n",
			wantFastest: 1,
			wantSlowest: 3,
		},
		{
			name:        "single size",
			src:         "1 1 4\n",
			wantFastest: 4,
			wantSlowest: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := mustParse(t, tt.src)
			assert.Equal(t, tt.wantFastest, lib.FastestPinDelay())
			assert.Equal(t, tt.wantSlowest, lib.SlowestPinDelay())
		})
	}
}

func TestDelaysAreDiscrete(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"all unit delays", "1 0 1\n2 1 1\n3 1 1\n", true},
		{"whole numbers above one", "1 0 2\n2 1 3\n", true},
		{"fractional delay", "1 0 1\n2 1 1.4\n", false},
		{"only pin 0 is inspected", "1 0 1\n2 1 1 1.5\n", true},
		{"fractional pin 0 in variable mode", "1 0 1\n2 1 0.5 1\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.src).DelaysAreDiscrete())
		})
	}
}
