package lutlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	for _, n := range SimpleSizes() {
		lib := Simple(n)
		assert.Equal(t, SimpleName, lib.Name())
		assert.Equal(t, n, lib.MaxSize())
		assert.False(t, lib.VariablePinDelays())

		assert.Equal(t, 0.0, lib.Area(1))
		assert.Equal(t, 0.0, lib.PinDelay(1, 0))
		for k := 2; k <= n; k++ {
			assert.Equal(t, 1.0, lib.Area(k))
			assert.Equal(t, 1.0, lib.PinDelay(k, 0))
		}
	}
}

func TestSimple_Size6(t *testing.T) {
	a := Simple(6)
	b := Simple(6)

	assert.Equal(t, 6, a.MaxSize())
	assert.Equal(t, 1.0, a.PinDelay(6, 0))
	assert.Equal(t, 1.0, a.Area(6))
	assert.True(t, a.DelaysAreDiscrete())
	assert.Equal(t, a.FastestPinDelay(), a.SlowestPinDelay())

	require.NotSame(t, a, b)
	a.entries[5].Delays[0] = 7
	assert.Equal(t, 1.0, b.PinDelay(6, 0), "presets share no storage")
	assert.Equal(t, 1.0, Simple(6).PinDelay(6, 0))
}

func TestSimple_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 11, MaxLutSize} {
		assert.Panics(t, func() { Simple(n) }, "size %d", n)
	}
}

func TestSimpleSizes(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10}, SimpleSizes())
}
