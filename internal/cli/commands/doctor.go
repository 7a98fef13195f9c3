package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// Health check statuses.
const (
	statusPass  = "pass"
	statusWarn  = "warn"
	statusError = "error"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [FILE]",
		Short: "Run a health check on a LUT library and its configuration",
		Long: `Report which config file is in use, whether the library parses, and how
it fares against every library rule, with a health score from 0 to 100.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDoctor,
	}
}

// DoctorOutput is the structured output of the doctor command.
type DoctorOutput struct {
	ConfigFile   string        `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	Library      string        `json:"library" yaml:"library"`
	MaxSize      int           `json:"max_size,omitempty" yaml:"max_size,omitempty"`
	HealthChecks []HealthCheck `json:"health_checks" yaml:"health_checks"`
	Score        int           `json:"score" yaml:"score"`
}

// HealthCheck is the result of one check.
type HealthCheck struct {
	RuleID     string   `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Status     string   `json:"status" yaml:"status"`
	IssueCount int      `json:"issue_count" yaml:"issue_count"`
	Details    []string `json:"details,omitempty" yaml:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	out := DoctorOutput{
		ConfigFile: cmdCtx.Cfg.ConfigFileUsed(),
		Library:    sourceName(args, cmdCtx),
	}

	// Strict mode is off here so every finding is counted against its rule.
	lib, diags, err := cmdCtx.loadLibrary(args, lutlib.WithStrict(false))
	parse := HealthCheck{Name: "parse", Status: statusPass}
	if err != nil {
		parse.Status = statusError
		parse.IssueCount = 1
		parse.Details = []string{err.Error()}
	}
	out.HealthChecks = append(out.HealthChecks, parse)

	if lib != nil {
		out.Library = lib.Name()
		out.MaxSize = lib.MaxSize()
		out.HealthChecks = append(out.HealthChecks, ruleChecks(diags)...)
	}
	out.Score = healthScore(out.HealthChecks)

	if ok, err := r.Structured(out); ok {
		return err
	}

	r.Header("library health", out.Library)
	if out.ConfigFile != "" {
		r.Muted(fmt.Sprintf("config: %s", out.ConfigFile))
	}
	rows := make([]table.Row, 0, len(out.HealthChecks))
	for _, hc := range out.HealthChecks {
		rows = append(rows, table.Row{hc.RuleID, hc.Name, hc.Status, hc.IssueCount})
	}
	r.Table(table.Row{"rule", "check", "status", "issues"}, rows)
	for _, hc := range out.HealthChecks {
		for _, d := range hc.Details {
			if hc.Status == statusError {
				r.Error(d)
			} else {
				r.Warning(d)
			}
		}
	}
	r.Println(fmt.Sprintf("Health score: %d/100", out.Score))
	return nil
}

// ruleChecks turns diagnostics into one health check per library rule.
func ruleChecks(diags []lutlib.Diagnostic) []HealthCheck {
	var checks []HealthCheck
	for _, rule := range lutlib.Rules() {
		hc := HealthCheck{RuleID: rule.ID, Name: rule.Name, Status: statusPass}
		for _, d := range diags {
			if d.RuleID != rule.ID {
				continue
			}
			hc.IssueCount++
			hc.Details = append(hc.Details, d.Message)
		}
		if hc.IssueCount > 0 {
			hc.Status = statusWarn
		}
		checks = append(checks, hc)
	}
	return checks
}

// healthScore is the share of passing checks. A failed parse scores 0.
func healthScore(checks []HealthCheck) int {
	if len(checks) == 0 {
		return 0
	}
	passed := 0
	for _, hc := range checks {
		switch hc.Status {
		case statusError:
			return 0
		case statusPass:
			passed++
		}
	}
	return passed * 100 / len(checks)
}
