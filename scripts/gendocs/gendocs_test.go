package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index := readDoc(t, filepath.Join(dir, "index.md"))
	assert.Contains(t, index, "# CLI Reference")
	assert.Contains(t, index, "| [`check`](/cli/check) | yes | yes |")
	assert.Contains(t, index, "| [`init`](/cli/init) |  |  |")
	assert.Contains(t, index, "`lut_size` / `LUTLIB_LUT_SIZE`")
	assert.Contains(t, index, "| `--config` | ")
	assert.Contains(t, index, "## Choosing a library")

	check := readDoc(t, filepath.Join(dir, "check.md"))
	assert.Contains(t, check, "lutlib check [FILE...]")
	assert.Contains(t, check, "`--roundtrip`")
	assert.Contains(t, check, "- `tolerance` (`LUTLIB_TOLERANCE`)")
	assert.Contains(t, check, "## Rules")
	assert.Contains(t, check, "```bash\n# Check one library\nlutlib check k6.lib")

	watch := readDoc(t, filepath.Join(dir, "watch.md"))
	assert.Contains(t, watch, "`watch_debounce`")

	version := readDoc(t, filepath.Join(dir, "version.md"))
	assert.NotContains(t, version, "## Configuration")
	assert.NotContains(t, version, "## Rules")
}

func TestDedent(t *testing.T) {
	assert.Equal(t, "# one\nlutlib show\n\n  nested", dedent("  # one\n  lutlib show\n\n    nested\n"))
	assert.Equal(t, "flat", dedent("flat"))
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	doc := readDoc(t, filepath.Join(dir, "configuration.md"))
	assert.Contains(t, doc, "`lut_size`")
	assert.Contains(t, doc, "`--strict`")
	assert.Contains(t, doc, "DO NOT EDIT")
}

func TestGenerateRulesDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRulesDocs(dir))

	doc := readDoc(t, filepath.Join(dir, "rules.md"))
	assert.Contains(t, doc, "**3 rules**")
	assert.Contains(t, doc, "### LUT002 - delay.pin_order {#LUT002}")
	assert.Contains(t, doc, "```text\n1 1.00 1.00\n2 1.00 2.00 1.00\n```")
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Title")
	w.Paragraph("  body  ")
	w.BulletList([]string{"a", Bold("b")})
	w.CodeBlock("bash", "lutlib show\n")

	assert.Equal(t, "## Title\n\nbody\n\n- a\n- **b**\n\n```bash\nlutlib show\n```\n\n", string(w.Bytes()))
	assert.Equal(t, "one two", cleanDescription(" one\n  two "))
}
