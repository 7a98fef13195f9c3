package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Verbose bool // show descriptions and examples
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [RULE-ID]",
		Short: "List the checks applied to LUT libraries",
		Long: `List the sanity rules that check and watch report as warnings.

Use --verbose, or name a rule, to see its description and examples.`,
		Example: `  # List all rules
  lutlib rules

  # Show one rule
  lutlib rules LUT002`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, r := range lutlib.Rules() {
				ids = append(ids, r.ID+"\t"+r.Name)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show descriptions and examples")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd).Renderer
	rules := lutlib.Rules()

	if ok, err := r.Structured(rules); ok {
		return err
	}

	if opts.Verbose {
		for _, rule := range rules {
			writeRule(cmd, rule)
		}
		return nil
	}

	r.Header(fmt.Sprintf("LUT library rules (%d)", len(rules)), "")
	rows := make([]table.Row, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, table.Row{rule.ID, rule.Name, rule.Severity.String()})
	}
	r.Table(table.Row{"id", "name", "severity"}, rows)
	return nil
}

func showRule(cmd *cobra.Command, id string) error {
	rule, ok := lutlib.LookupRule(strings.ToUpper(id))
	if !ok {
		return fmt.Errorf("rule %q not found", id)
	}

	if ok, err := NewCommandContext(cmd).Renderer.Structured(rule); ok {
		return err
	}
	writeRule(cmd, rule)
	return nil
}

func writeRule(cmd *cobra.Command, rule lutlib.RuleInfo) {
	r := NewCommandContext(cmd).Renderer
	r.Header(rule.ID, "")
	r.Println(fmt.Sprintf("Name: %s", rule.Name))
	r.Println(fmt.Sprintf("Severity: %s", rule.Severity))
	r.Println()
	r.Println(rule.Description)
	if rule.BadExample != "" {
		r.Println()
		r.Muted("Bad:")
		r.Println(rule.BadExample)
	}
	if rule.GoodExample != "" {
		r.Println()
		r.Muted("Good:")
		r.Println(rule.GoodExample)
	}
	r.Println()
}
