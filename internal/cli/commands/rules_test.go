package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

func TestRulesCommand_ListAll(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), nil)
	require.NoError(t, err)

	assert.Contains(t, out, "## LUT Library Rules (3)")
	assert.Contains(t, out, "| LUT001 | delay.non_positive | warning |")
	assert.Contains(t, out, "| LUT002 | delay.pin_order | warning |")
	assert.Contains(t, out, "| LUT003 | area.negative | warning |")
}

func TestRulesCommand_Verbose(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), nil, "--verbose")
	require.NoError(t, err)

	for _, rule := range lutlib.Rules() {
		assert.Contains(t, out, rule.ID)
		assert.Contains(t, out, rule.Description)
	}
	assert.Contains(t, out, "Bad:")
	assert.Contains(t, out, "Good:")
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, _, err := runCommand(t, NewRulesCommand(), nil, "lut002")
		require.NoError(t, err)
		assert.Contains(t, out, "## LUT002")
		assert.Contains(t, out, "Name: delay.pin_order")
		assert.Contains(t, out, "Severity: warning")
		assert.Contains(t, out, "2 1.00 2.00 1.00")
		assert.NotContains(t, out, "LUT001")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := runCommand(t, NewRulesCommand(), withOutput("json"), "LUT003")
		require.NoError(t, err)

		var rule lutlib.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &rule))
		assert.Equal(t, lutlib.RuleNegativeArea, rule.ID)
		assert.Equal(t, lutlib.SeverityWarning, rule.Severity)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, _, err := runCommand(t, NewRulesCommand(), nil, "LUT999")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "LUT999" not found`)
	})
}

func TestRulesCommand_JSONList(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), withOutput("json"))
	require.NoError(t, err)

	var rules []lutlib.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Len(t, rules, 3)
}
