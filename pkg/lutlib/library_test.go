package lutlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Library {
	t.Helper()
	lib, _, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	return lib
}

func TestLibrary_Clone(t *testing.T) {
	lib := mustParse(t, "1 0 0\n2 1 1 2\n3 1.5 1 2 3\n")

	dup := lib.Clone()
	require.NotSame(t, lib, dup)
	assert.Equal(t, lib.Name(), dup.Name())
	assert.True(t, Equal(lib, dup, 0))

	renamed := dup.WithName("other")
	assert.Equal(t, "other", renamed.Name())
	assert.Equal(t, "test", lib.Name())
	assert.Equal(t, "test", dup.Name())
}

func TestLibrary_AccessorsReturnCopies(t *testing.T) {
	lib := mustParse(t, "1 0 1\n2 1 1 2\n")

	delays := lib.Delays(2)
	delays[0] = 99
	assert.Equal(t, 1.0, lib.PinDelay(2, 0))

	entries := lib.Entries()
	entries[1].Delays[1] = 99
	entries[1].Area = 99
	assert.Equal(t, 2.0, lib.PinDelay(2, 1))
	assert.Equal(t, 1.0, lib.Area(2))
}

func TestLibrary_OutOfRangeLookups(t *testing.T) {
	lib := mustParse(t, "1 0 1\n2 1 1 2\n")

	assert.Equal(t, 0.0, lib.Area(0))
	assert.Equal(t, 0.0, lib.Area(3))
	assert.Nil(t, lib.Delays(3))
	assert.Equal(t, 0.0, lib.PinDelay(2, 2), "pin beyond size")
	assert.Equal(t, 0.0, lib.PinDelay(2, -1))
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "1 0 1\n2 1 1.001\n")
	b := mustParse(t, "1 0 1\n2 1 1\n")
	c := mustParse(t, "1 0 1\n2 1 1 1\n")

	assert.True(t, Equal(a, b, 0.01))
	assert.False(t, Equal(a, b, 0))
	assert.False(t, Equal(b, c, 0.01), "uniform and variable libraries differ")
	assert.True(t, Equal(nil, nil, 0))
	assert.False(t, Equal(a, nil, 0))
}

func TestClone_Nil(t *testing.T) {
	var lib *Library
	assert.Nil(t, lib.Clone())
}

func TestLibrary_NilAccessors(t *testing.T) {
	var lib *Library

	require.NotPanics(t, func() {
		assert.Empty(t, lib.Name())
		assert.Zero(t, lib.MaxSize())
		assert.False(t, lib.VariablePinDelays())
		assert.Zero(t, lib.Area(1))
		assert.Nil(t, lib.Delays(1))
		assert.Zero(t, lib.PinDelay(1, 0))
		assert.Empty(t, lib.Entries())
		assert.Nil(t, lib.WithName("other"))
		assert.True(t, lib.DelaysAreDiscrete())
		assert.Equal(t, 1.0, lib.FastestPinDelay())
		assert.Equal(t, 1.0, lib.SlowestPinDelay())
	})

	var sb strings.Builder
	n, err := lib.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
	assert.Equal(t, "# The area/delay of k-variable LUTs:\n# k    area     delay\n", lib.String())
}
