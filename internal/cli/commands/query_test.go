package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lutlib/internal/testutil"
	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

func mustParseLibrary(t *testing.T, content string) *lutlib.Library {
	t.Helper()
	lib, _, err := lutlib.Parse(strings.NewReader(content), "test")
	require.NoError(t, err)
	return lib
}

func TestEvalQuery(t *testing.T) {
	variable := mustParseLibrary(t, variableLibrary)
	uniform := lutlib.Simple(4)

	tests := []struct {
		name    string
		lib     *lutlib.Library
		query   string
		want    string
		wantErr string
	}{
		{"area", variable, "area 2", "1.00", ""},
		{"delay default pin", variable, "delay 3", "1.00", ""},
		{"delay pin", variable, "DELAY 3 2", "3.00", ""},
		{"delays variable", variable, "delays 3", "1.00 2.00 3.00", ""},
		{"delays uniform", uniform, "delays 2", "1.00 1.00", ""},
		{"fastest", variable, "fastest", "1.00", ""},
		{"slowest", variable, "slowest", "3.00", ""},
		{"discrete", variable, "discrete", "true", ""},
		{"max", uniform, "max", "4", ""},
		{"empty", uniform, "   ", "", "empty query"},
		{"unknown", uniform, "volume 2", "", `unknown query "volume"`},
		{"size out of range", uniform, "area 5", "", `LUT size "5" is not between 1 and 4`},
		{"size not a number", uniform, "area x", "", `LUT size "x"`},
		{"pin out of range", uniform, "delay 2 2", "", `pin "2" is not between 0 and 1`},
		{"missing size", uniform, "area", "", "usage: area K"},
		{"extra argument", uniform, "max 3", "", "usage: max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalQuery(tt.lib, tt.query)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunQueryScript(t *testing.T) {
	lib := lutlib.Simple(3)

	var out bytes.Buffer
	err := runQueryScript(&out, strings.NewReader("# sizes\nmax\n\narea 3\n"), lib)
	require.NoError(t, err)
	assert.Equal(t, "3\n1.00\n", out.String())

	out.Reset()
	err = runQueryScript(&out, strings.NewReader("max\nbogus\narea 1\n"), lib)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "3\n", out.String())
}

func TestQueryCommand(t *testing.T) {
	t.Run("one query against the preset", func(t *testing.T) {
		cfg := withOutput("auto")
		cfg.LutSize = 5
		out, _, err := runCommand(t, NewQueryCommand(), cfg, "max")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})

	t.Run("configured library", func(t *testing.T) {
		cfg := withOutput("auto")
		cfg.Library = testutil.WriteLibrary(t, "var.lib", variableLibrary)
		out, _, err := runCommand(t, NewQueryCommand(), cfg, "delay", "3", "1")
		require.NoError(t, err)
		assert.Equal(t, "2.00\n", out)
	})

	t.Run("input file", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "queries.txt")
		testutil.WriteFile(t, input, "fastest\nslowest\n")
		out, _, err := runCommand(t, NewQueryCommand(), nil, "--input", input)
		require.NoError(t, err)
		assert.Equal(t, "1.00\n1.00\n", out)
	})

	t.Run("bad query", func(t *testing.T) {
		_, _, err := runCommand(t, NewQueryCommand(), nil, "area", "99")
		require.Error(t, err)
	})
}

func TestNewQueryCompleter(t *testing.T) {
	c := newQueryCompleter(lutlib.Simple(3))
	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	assert.Contains(t, names, "area")
	assert.Contains(t, names, ".quit")
}
