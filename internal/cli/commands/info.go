package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [FILE]",
		Short: "Summarize the delay characteristics of a LUT library",
		Long: `Print the figures a technology mapper reads from a library: the largest
LUT size, the delay mode, the fastest and slowest pin delay of the largest
LUT, and whether delays are whole numbers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}
}

// LibraryInfo is the summary printed by the info command.
type LibraryInfo struct {
	Name              string  `json:"name" yaml:"name"`
	MaxSize           int     `json:"max_size" yaml:"max_size"`
	VariablePinDelays bool    `json:"variable_pin_delays" yaml:"variable_pin_delays"`
	FastestPinDelay   float64 `json:"fastest_pin_delay" yaml:"fastest_pin_delay"`
	SlowestPinDelay   float64 `json:"slowest_pin_delay" yaml:"slowest_pin_delay"`
	DiscreteDelays    bool    `json:"discrete_delays" yaml:"discrete_delays"`
	Warnings          int     `json:"warnings" yaml:"warnings"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	lib, diags, err := cmdCtx.loadLibrary(args)
	if err != nil {
		cmdCtx.reportDiagnostics(sourceName(args, cmdCtx), diags)
		return err
	}

	info := LibraryInfo{
		Name:              lib.Name(),
		MaxSize:           lib.MaxSize(),
		VariablePinDelays: lib.VariablePinDelays(),
		FastestPinDelay:   lib.FastestPinDelay(),
		SlowestPinDelay:   lib.SlowestPinDelay(),
		DiscreteDelays:    lib.DelaysAreDiscrete(),
		Warnings:          len(diags),
	}

	if ok, err := r.Structured(info); ok {
		return err
	}

	cmdCtx.reportDiagnostics(lib.Name(), diags)
	r.Header("LUT library", info.Name)
	r.Table(table.Row{"property", "value"}, []table.Row{
		{"max LUT size", info.MaxSize},
		{"delay mode", delayMode(info.VariablePinDelays)},
		{"fastest pin delay", fmt.Sprintf("%.2f", info.FastestPinDelay)},
		{"slowest pin delay", fmt.Sprintf("%.2f", info.SlowestPinDelay)},
		{"discrete delays", info.DiscreteDelays},
		{"warnings", info.Warnings},
	})
	return nil
}
