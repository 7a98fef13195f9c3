package lutlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo_Uniform(t *testing.T) {
	lib := mustParse(t, "1 0 0.5\n2 1.25 1\n")

	var buf bytes.Buffer
	n, err := lib.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	want := "# The area/delay of k-variable LUTs:\n" +
		"# k    area     delay\n" +
		"1      0.00      0.50\n" +
		"2      1.25      1.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTo_Variable(t *testing.T) {
	lib := mustParse(t, "1 0 1\n2 1 1 2\n")

	lines := strings.Split(strings.TrimSpace(lib.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1      0.00      1.00", lines[2])
	assert.Equal(t, "2      1.00      1.00    2.00", lines[3])
}

func TestRender_RoundTrip(t *testing.T) {
	sources := map[string]string{
		"uniform":          "1 0 0\n2 1 1\n3 1 1\n4 2.5 1.75\n",
		"variable":         "1 0 0.3\n2 1 0.3 0.4\n3 1 0.3 0.4 0.55\n",
		"variable partial": "1 0 1\n2 1 1 2\n3 1 3\n",
		"preset":           Simple(6).String(),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			lib := mustParse(t, src)

			again, _, err := Parse(strings.NewReader(lib.String()), "again")
			require.NoError(t, err)
			assert.True(t, Equal(lib, again, 0.005), "rendered:\n%s", lib.String())
		})
	}
}
