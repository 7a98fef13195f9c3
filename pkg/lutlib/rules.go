package lutlib

import "slices"

// RuleInfo describes one validation rule.
type RuleInfo struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
	BadExample  string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty" yaml:"good_example,omitempty"`
}

var rules = []RuleInfo{
	{
		ID:       RuleNonPositiveDelay,
		Name:     "delay.non_positive",
		Severity: SeverityWarning,
		Description: "A LUT delay is zero or negative. In a library with variable " +
			"pin delays every pin is checked.",
		BadExample:  "1 1.00 0.00",
		GoodExample: "1 1.00 1.00",
	},
	{
		ID:       RulePinOrder,
		Name:     "delay.pin_order",
		Severity: SeverityWarning,
		Description: "In a library with variable pin delays, a pin is faster than the " +
			"pin before it. Pins must be listed fastest first.",
		BadExample:  "1 1.00 1.00\n2 1.00 2.00 1.00",
		GoodExample: "1 1.00 1.00\n2 1.00 1.00 2.00",
	},
	{
		ID:          RuleNegativeArea,
		Name:        "area.negative",
		Severity:    SeverityWarning,
		Description: "A LUT has a negative area.",
		BadExample:  "1 -1.00 1.00",
		GoodExample: "1 1.00 1.00",
	},
}

// Rules returns the validation rules in ID order.
func Rules() []RuleInfo {
	return slices.Clone(rules)
}

// LookupRule returns the rule with the given ID.
func LookupRule(id string) (RuleInfo, bool) {
	i := slices.IndexFunc(rules, func(r RuleInfo) bool { return r.ID == id })
	if i < 0 {
		return RuleInfo{}, false
	}
	return rules[i], true
}
