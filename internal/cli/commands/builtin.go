package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lutlib/internal/cli/output"
	intconfig "github.com/leapstack-labs/lutlib/internal/config"
	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// BuiltinOptions holds options for the builtin command.
type BuiltinOptions struct {
	Table bool // render as a table instead of the library file format
}

// NewBuiltinCommand creates the builtin command.
func NewBuiltinCommand() *cobra.Command {
	opts := &BuiltinOptions{}
	cmd := &cobra.Command{
		Use:   "builtin [SIZE]",
		Short: "Print a built-in unit LUT library",
		Long: `Print the built-in library for LUTs of up to SIZE inputs (3 to 10).

Every size has area 1 and delay 1, except size 1 which has area 0 and delay 0.
The output uses the library file format unless --table or a structured output
format is selected. Without SIZE the configured lut_size is used.`,
		Example: `  # Write a starting point for a custom 6-LUT library
  lutlib builtin 6 > k6.lib`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validSizeArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuiltin(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Table, "table", false, "Render as a table")

	return cmd
}

func runBuiltin(cmd *cobra.Command, args []string, opts *BuiltinOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	size := cmdCtx.Cfg.LutSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid LUT size %q: %w", args[0], err)
		}
		size = n
	}
	if !intconfig.ValidLutSize(size) {
		return fmt.Errorf("no built-in library for LUT size %d (supported: %d..%d)",
			size, lutlib.MinSimpleSize, lutlib.MaxSimpleSize)
	}

	lib := lutlib.Simple(size)
	mode := r.EffectiveMode()
	structured := mode == output.ModeJSON || mode == output.ModeYAML
	return renderLibrary(r, lib, !opts.Table && !structured)
}

func validSizeArgs() []string {
	sizes := lutlib.SimpleSizes()
	out := make([]string, len(sizes))
	for i, n := range sizes {
		out[i] = strconv.Itoa(n)
	}
	return out
}
