package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	RoundTrip bool // also verify that the rendered library re-parses unchanged
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Parse and validate LUT library files",
		Long: `Parse each LUT library file and report problems.

Structural errors (sizes out of sequence, too many pin delays, sizes at the
maximum supported LUT size, malformed numbers) make the file fail. Numeric
sanity problems (non-positive delays, pins out of order, negative areas) are
reported as warnings, or as errors with --strict.

Files are checked concurrently. Without arguments the configured library is
checked.`,
		Example: `  # Check one library
  lutlib check k6.lib

  # Treat warnings as errors and verify the printed form re-parses
  lutlib check --strict --roundtrip libs/*.lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.RoundTrip, "roundtrip", false, "Verify the rendered library parses back to the same values")

	return cmd
}

// CheckResult is the outcome of checking one library file.
type CheckResult struct {
	Path              string              `json:"path" yaml:"path"`
	OK                bool                `json:"ok" yaml:"ok"`
	MaxSize           int                 `json:"max_size,omitempty" yaml:"max_size,omitempty"`
	VariablePinDelays bool                `json:"variable_pin_delays,omitempty" yaml:"variable_pin_delays,omitempty"`
	Diagnostics       []lutlib.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Error             string              `json:"error,omitempty" yaml:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	paths := args
	if len(paths) == 0 {
		if cmdCtx.Cfg.Library == "" {
			return errors.New("no library file given and no library configured")
		}
		paths = []string{cmdCtx.Cfg.Library}
	}

	results, err := checkFiles(cmd.Context(), cmdCtx, paths, opts)
	if err != nil {
		return err
	}

	if ok, err := r.Structured(results); ok {
		if err != nil {
			return err
		}
	} else {
		for _, res := range results {
			switch {
			case res.Error != "":
				r.Error(res.Error)
				cmdCtx.reportDiagnostics(res.Path, res.Diagnostics)
			default:
				cmdCtx.reportDiagnostics(res.Path, res.Diagnostics)
				r.Success(fmt.Sprintf("%s: %d LUT sizes, %s, %d warning(s)",
					res.Path, res.MaxSize, delayMode(res.VariablePinDelays), len(res.Diagnostics)))
			}
		}
	}

	failed := 0
	for _, res := range results {
		if !res.OK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d libraries failed", failed, len(results))
	}
	return nil
}

// checkFiles checks paths concurrently. Results keep the order of paths.
func checkFiles(ctx context.Context, cmdCtx *CommandContext, paths []string, opts *CheckOptions) ([]CheckResult, error) {
	results := make([]CheckResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(cmdCtx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(cmdCtx *CommandContext, path string, opts *CheckOptions) CheckResult {
	logger := cmdCtx.Logger.With(slog.String("path", path))
	lib, diags, err := lutlib.ReadFile(path, lutlib.WithLogger(logger), lutlib.WithStrict(cmdCtx.Cfg.Strict))
	res := CheckResult{Path: path, Diagnostics: diags}
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.OK = true
	res.MaxSize = lib.MaxSize()
	res.VariablePinDelays = lib.VariablePinDelays()

	if opts.RoundTrip {
		again, _, err := lutlib.Parse(strings.NewReader(lib.String()), path)
		switch {
		case err != nil:
			res.OK = false
			res.Error = fmt.Sprintf("%s: rendered library does not parse: %v", path, err)
		case !lutlib.Equal(lib, again, cmdCtx.Cfg.Tolerance):
			res.OK = false
			res.Error = fmt.Sprintf("%s: rendered library differs by more than %g", path, cmdCtx.Cfg.Tolerance)
		}
	}
	return res
}

func delayMode(variable bool) string {
	if variable {
		return "variable pin delays"
	}
	return "uniform delays"
}
