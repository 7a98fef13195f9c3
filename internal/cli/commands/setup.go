package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lutlib/internal/cli/config"
	"github.com/leapstack-labs/lutlib/internal/cli/output"
	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// parserOptions returns the parser options implied by the configuration.
func (c *CommandContext) parserOptions() []lutlib.ParserOption {
	return []lutlib.ParserOption{
		lutlib.WithLogger(c.Logger),
		lutlib.WithStrict(c.Cfg.Strict),
	}
}

// loadLibrary reads the library named by args, falling back to the
// configured library file and then to the configured built-in preset.
// Options in extra override the configured ones.
func (c *CommandContext) loadLibrary(args []string, extra ...lutlib.ParserOption) (*lutlib.Library, []lutlib.Diagnostic, error) {
	path := c.Cfg.Library
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		c.Logger.Debug("no library file configured, using built-in preset", slog.Int("lut_size", c.Cfg.LutSize))
		lib := lutlib.Simple(c.Cfg.LutSize)
		return lib, nil, nil
	}

	lib, diags, err := lutlib.ReadFile(path, append(c.parserOptions(), extra...)...)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to load library: %w", err)
	}
	return lib, diags, nil
}

// reportDiagnostics writes each diagnostic as a warning or error line.
func (c *CommandContext) reportDiagnostics(source string, diags []lutlib.Diagnostic) {
	for _, d := range diags {
		msg := fmt.Sprintf("%s: [%s] %s", source, d.RuleID, d.Message)
		if d.Severity == lutlib.SeverityError {
			c.Renderer.Error(msg)
		} else {
			c.Renderer.Warning(msg)
		}
	}
}

// libraryView is the structured form of a library for JSON and YAML output.
type libraryView struct {
	Name              string         `json:"name" yaml:"name"`
	MaxSize           int            `json:"max_size" yaml:"max_size"`
	VariablePinDelays bool           `json:"variable_pin_delays" yaml:"variable_pin_delays"`
	Entries           []lutlib.Entry `json:"entries" yaml:"entries"`
}

func newLibraryView(lib *lutlib.Library) libraryView {
	return libraryView{
		Name:              lib.Name(),
		MaxSize:           lib.MaxSize(),
		VariablePinDelays: lib.VariablePinDelays(),
		Entries:           lib.Entries(),
	}
}
