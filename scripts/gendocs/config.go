package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	intconfig "github.com/leapstack-labs/lutlib/internal/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Flag        string
	Description string
}

// getConfigSchema returns the configuration schema definition.
// This is based on internal/cli/config/types.go Config.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "library", Type: "string", Flag: "--library", Description: "LUT library file used when a command gets no path, relative to the config file"},
		{Name: "lut_size", Type: "int", Default: strconv.Itoa(intconfig.DefaultLutSize), Flag: "--lut-size", Description: "Built-in preset used when no library file is set (3 to 10)"},
		{Name: "output", Type: "string", Default: intconfig.DefaultOutput, Flag: "--output", Description: "Output format: auto, text, markdown, json, yaml"},
		{Name: "log_level", Type: "string", Default: intconfig.DefaultLogLevel, Flag: "--log-level", Description: "Log level: debug, info, warn, error"},
		{Name: "verbose", Type: "bool", Default: "false", Flag: "--verbose", Description: "Verbose output, forces debug logging"},
		{Name: "strict", Type: "bool", Default: "false", Flag: "--strict", Description: "Treat library warnings as errors"},
		{Name: "watch_debounce", Type: "duration", Default: intconfig.DefaultWatchDebounce.String(), Description: "Quiet period after a change before watch re-checks the library"},
		{Name: "tolerance", Type: "float", Default: strconv.FormatFloat(intconfig.DefaultTolerance, 'g', -1, 64), Description: "Largest difference accepted by check --roundtrip"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "lutlib configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("lutlib reads %s (or %s) from the current directory or the nearest parent directory. "+
		"Values are layered: defaults, then the config file, then %s environment variables, then flags.",
		InlineCode(intconfig.ConfigFileNames[0]), InlineCode(intconfig.ConfigFileNames[1]), InlineCode("LUTLIB_*")))

	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		flagName := "-"
		if f.Flag != "" {
			flagName = InlineCode(f.Flag)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, flagName, f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Flag", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `library: lutlib.lib
lut_size: 6
output: auto
strict: false`)

	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
