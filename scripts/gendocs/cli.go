package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/lutlib/internal/cli"
)

// commandTopic records what a command touches beyond its own flags.
type commandTopic struct {
	library bool     // resolves a library: argument, then library, then lut_size preset
	rules   bool     // reports rule findings
	keys    []string // config keys read besides the global ones
}

var commandTopics = map[string]commandTopic{
	"check":   {library: true, rules: true, keys: []string{"strict", "tolerance"}},
	"show":    {library: true, rules: true, keys: []string{"strict"}},
	"info":    {library: true, rules: true, keys: []string{"strict"}},
	"watch":   {library: true, rules: true, keys: []string{"strict", "watch_debounce"}},
	"doctor":  {library: true, rules: true},
	"query":   {library: true, keys: []string{"strict"}},
	"builtin": {keys: []string{"lut_size"}},
	"rules":   {rules: true},
}

// documentedCommands returns the user-facing subcommands of root.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || !cmd.IsAvailableCommand() || cmd.Name() == "help" {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

// generateCLIDocs writes index.md and one page per command into outDir.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range documentedCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	for name, data := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for lutlib")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "lutlib [global options] <command> [arguments]")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		topic := commandTopics[cmd.Name()]
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			yesNo(topic.library),
			yesNo(topic.rules),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Reads library", "Reports rules", "Description"}, rows)

	w.Header(2, "Choosing a library")
	w.Paragraph("Commands that read a library take it from the first of:")
	w.BulletList([]string{
		"the FILE argument, for commands that take one",
		fmt.Sprintf("the %s config key or %s flag", InlineCode("library"), InlineCode("--library")),
		fmt.Sprintf("the built-in preset of size %s (default %s)", InlineCode("lut_size"), InlineCode(root.PersistentFlags().Lookup("lut-size").DefValue)),
	})

	w.Header(2, "Global Options")
	w.FlagTable(root.PersistentFlags(), configKeyForFlag)

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Every library parsed; warnings do not fail unless strict"},
		{InlineCode("1"), "A library failed to parse, a strict check found warnings, or the invocation was invalid"},
	})

	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	w.Paragraph(cmd.Long)
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		w.FlagTable(cmd.LocalFlags(), nil)
	}

	topic := commandTopics[cmd.Name()]
	if keys := configKeysFor(topic); len(keys) > 0 {
		w.Header(2, "Configuration")
		items := make([]string, len(keys))
		for i, key := range keys {
			items[i] = fmt.Sprintf("%s (%s)", InlineCode(key), envVar(key))
		}
		w.BulletList(items)
	}

	if topic.rules {
		w.Header(2, "Rules")
		w.Paragraph(fmt.Sprintf("Findings carry a rule ID from the [rules reference](/reference/rules). "+
			"Use %s to read about one.", InlineCode("lutlib rules <RULE-ID>")))
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w.Bytes()
}

// configKeysFor lists the config keys a command reads, library resolution first.
func configKeysFor(topic commandTopic) []string {
	var keys []string
	if topic.library {
		keys = append(keys, "library", "lut_size")
	}
	for _, k := range topic.keys {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// configKeyForFlag maps a persistent flag to its config key, or "".
func configKeyForFlag(f *pflag.Flag) string {
	key := strings.ReplaceAll(f.Name, "-", "_")
	for _, field := range getConfigSchema() {
		if field.Name == key {
			return key
		}
	}
	return ""
}

func envVar(key string) string {
	return InlineCode("LUTLIB_" + strings.ToUpper(key))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// dedent strips the indentation shared by every non-blank line.
func dedent(text string) string {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.Join(lines, "\n")
}
