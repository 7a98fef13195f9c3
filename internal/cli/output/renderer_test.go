package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(isTTY bool, mode OutputMode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := map[string]OutputMode{
		"text":     ModeText,
		"markdown": ModeMarkdown,
		"json":     ModeJSON,
		"yaml":     ModeYAML,
		"auto":     ModeAuto,
		"":         ModeAuto,
		"xml":      ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, Mode(in), "Mode(%q)", in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		mode  OutputMode
		want  OutputMode
	}{
		{"auto on tty", true, ModeAuto, ModeText},
		{"auto piped", false, ModeAuto, ModeMarkdown},
		{"empty piped", false, "", ModeMarkdown},
		{"explicit json on tty", true, ModeJSON, ModeJSON},
		{"explicit text piped", false, ModeText, ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRendererDetectsPipes(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestHeader(t *testing.T) {
	r, out, _ := newTestRenderer(false, ModeMarkdown)
	r.Header("LUT library", "k6.lib")
	r.Header("library rules", "")
	assert.Equal(t, "## LUT Library: k6.lib\n\n## Library Rules\n\n", out.String())

	r, out, _ = newTestRenderer(false, ModeText)
	r.Header("LUT library", "k6.lib")
	assert.Equal(t, "LUT library: k6.lib\n", out.String(), "no escapes without a terminal")
}

func TestTable(t *testing.T) {
	header := table.Row{"k", "area"}
	rows := []table.Row{{1, "0.00"}, {2, "1.00"}}

	r, out, _ := newTestRenderer(false, ModeMarkdown)
	r.Table(header, rows)
	assert.Contains(t, out.String(), "| 1 | 0.00 |")
	assert.Contains(t, out.String(), "| 2 | 1.00 |")

	r, out, _ = newTestRenderer(false, ModeText)
	r.Table(header, rows)
	assert.Contains(t, out.String(), "┌")
	assert.Contains(t, out.String(), "1.00")
}

func TestStructured(t *testing.T) {
	v := map[string]int{"max_size": 6}

	r, out, _ := newTestRenderer(false, ModeJSON)
	ok, err := r.Structured(v)
	require.NoError(t, err)
	assert.True(t, ok)
	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, v, got)

	r, out, _ = newTestRenderer(false, ModeYAML)
	ok, err = r.Structured(v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "max_size: 6\n", out.String())

	r, out, _ = newTestRenderer(false, ModeMarkdown)
	ok, err = r.Structured(v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestMessages(t *testing.T) {
	r, out, errOut := newTestRenderer(false, ModeText)
	r.Warning("slow pin")
	r.Error("bad file")
	r.Success("done")
	r.Muted("watching")

	assert.Equal(t, "warning: slow pin\nerror: bad file\n", errOut.String())
	assert.Equal(t, "ok: done\nwatching\n", out.String())
}

func TestMessagesStyledPerStream(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	tests := []struct {
		name           string
		outTTY, errTTY bool
	}{
		{"stdout piped, stderr on terminal", false, true},
		{"stdout on terminal, stderr piped", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := new(bytes.Buffer), new(bytes.Buffer)
			r := newRenderer(out, errOut, tt.outTTY, tt.errTTY, ModeText)
			r.Warning("slow pin")
			r.Success("done")

			assert.Equal(t, tt.errTTY, strings.Contains(errOut.String(), "\x1b["), "stderr: %q", errOut.String())
			assert.Equal(t, tt.outTTY, strings.Contains(out.String(), "\x1b["), "stdout: %q", out.String())
			assert.Contains(t, errOut.String(), "slow pin")
			assert.Contains(t, out.String(), "done")
		})
	}
}
