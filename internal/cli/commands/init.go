package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	intconfig "github.com/leapstack-labs/lutlib/internal/config"
	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// starterLibrary is the library file created by init.
const starterLibrary = "lutlib.lib"

// InitOptions holds options for the init command.
type InitOptions struct {
	Force bool
	Size  int
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a lutlib.yaml and a starter LUT library",
		Long: `Initialize a directory with a lutlib.yaml configuration file and a starter
library file copied from the built-in unit library of the chosen size.

This creates:
  - lutlib.yaml pointing at the starter library
  - lutlib.lib with area/delay 1 for sizes 2..SIZE`,
		Example: `  # Initialize in current directory with 6-input LUTs
  lutlib init

  # Initialize a new directory for 4-input LUTs
  lutlib init k4 --size 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")
	cmd.Flags().IntVar(&opts.Size, "size", intconfig.DefaultLutSize, "Largest LUT size of the starter library (3..10)")

	return cmd
}

// initConfig is the content of a generated lutlib.yaml.
type initConfig struct {
	Library string `yaml:"library"`
	LutSize int    `yaml:"lut_size"`
	Output  string `yaml:"output"`
	Strict  bool   `yaml:"strict"`
}

func runInit(cmd *cobra.Command, dir string, opts *InitOptions) error {
	r := NewCommandContext(cmd).Renderer

	if !intconfig.ValidLutSize(opts.Size) {
		return fmt.Errorf("no built-in library for LUT size %d (supported: %d..%d)",
			opts.Size, lutlib.MinSimpleSize, lutlib.MaxSimpleSize)
	}

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileNames[0])
	libPath := filepath.Join(dir, starterLibrary)
	if !opts.Force {
		for _, p := range []string{configPath, libPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists. Use --force to overwrite", p)
			}
		}
	}

	data, err := yaml.Marshal(initConfig{
		Library: starterLibrary,
		LutSize: opts.Size,
		Output:  intconfig.DefaultOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	lib := lutlib.Simple(opts.Size)
	if err := os.WriteFile(libPath, []byte(lib.String()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", libPath, err)
	}

	r.Success(configPath)
	r.Success(libPath)
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit " + starterLibrary + " with the area and pin delays of your LUTs")
	r.Println("  2. Run 'lutlib check' to validate it")
	r.Println("  3. Run 'lutlib info' to see what a mapper will read")
	return nil
}
