package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

const queryPrompt = "lutlib> "

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Input string // file of queries, one per line
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}
	cmd := &cobra.Command{
		Use:   "query [QUERY]",
		Short: "Query areas and delays of a LUT library",
		Long: `Answer questions about the configured LUT library.

Queries:
  area K           area of a K-input LUT
  delay K [PIN]    delay from PIN (default 0) of a K-input LUT to its output
  delays K         all pin delays of a K-input LUT
  fastest          fastest pin delay of the largest LUT
  slowest          slowest pin delay of the largest LUT
  discrete         whether delays are whole numbers
  max              largest LUT size

When invoked without a query, enters interactive mode.`,
		Example: `  # One query against a library file
  lutlib query -l k6.lib delay 6 5

  # Run queries from a file
  lutlib query -l k6.lib --input queries.txt

  # Interactive mode on the built-in 4-input preset
  lutlib query --lut-size 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read queries from file, one per line")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cmdCtx := NewCommandContext(cmd)
	lib, diags, err := cmdCtx.loadLibrary(nil)
	if err != nil {
		cmdCtx.reportDiagnostics(cmdCtx.Cfg.Library, diags)
		return err
	}
	cmdCtx.reportDiagnostics(lib.Name(), diags)

	switch {
	case len(args) > 0:
		answer, err := evalQuery(lib, strings.Join(args, " "))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	case opts.Input != "":
		f, err := os.Open(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read queries: %w", err)
		}
		defer func() { _ = f.Close() }()
		return runQueryScript(cmd.OutOrStdout(), f, lib)
	default:
		return runQueryREPL(cmd, lib)
	}
}

// runQueryScript answers each non-blank, non-comment line of r. It stops at
// the first failing query.
func runQueryScript(w io.Writer, r io.Reader, lib *lutlib.Library) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		answer, err := evalQuery(lib, line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		_, _ = fmt.Fprintln(w, answer)
	}
	return sc.Err()
}

func runQueryREPL(cmd *cobra.Command, lib *lutlib.Library) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          queryPrompt,
		AutoComplete:    newQueryCompleter(lib),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lutlib query (library: %s, %d LUT sizes)\n", lib.Name(), lib.MaxSize())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for queries, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ".quit", ".exit":
			return nil
		case ".help":
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			continue
		}

		answer, err := evalQuery(lib, line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), answer)
	}
}

// evalQuery answers a single query against lib.
func evalQuery(lib *lutlib.Library, query string) (string, error) {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "", errors.New("empty query")
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "area", "delays":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: %s K", name)
		}
		k, err := parseLutSize(lib, args[0])
		if err != nil {
			return "", err
		}
		if name == "area" {
			return fmt.Sprintf("%.2f", lib.Area(k)), nil
		}
		parts := make([]string, k)
		for pin := range k {
			parts[pin] = fmt.Sprintf("%.2f", lib.PinDelay(k, pin))
		}
		return strings.Join(parts, " "), nil

	case "delay":
		if len(args) < 1 || len(args) > 2 {
			return "", errors.New("usage: delay K [PIN]")
		}
		k, err := parseLutSize(lib, args[0])
		if err != nil {
			return "", err
		}
		pin := 0
		if len(args) == 2 {
			pin, err = strconv.Atoi(args[1])
			if err != nil || pin < 0 || pin >= k {
				return "", fmt.Errorf("pin %q is not between 0 and %d", args[1], k-1)
			}
		}
		return fmt.Sprintf("%.2f", lib.PinDelay(k, pin)), nil

	case "fastest", "slowest", "discrete", "max":
		if len(args) != 0 {
			return "", fmt.Errorf("usage: %s", name)
		}
		switch name {
		case "fastest":
			return fmt.Sprintf("%.2f", lib.FastestPinDelay()), nil
		case "slowest":
			return fmt.Sprintf("%.2f", lib.SlowestPinDelay()), nil
		case "discrete":
			return strconv.FormatBool(lib.DelaysAreDiscrete()), nil
		default:
			return strconv.Itoa(lib.MaxSize()), nil
		}

	default:
		return "", fmt.Errorf("unknown query %q", fields[0])
	}
}

func parseLutSize(lib *lutlib.Library, s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil || k < 1 || k > lib.MaxSize() {
		return 0, fmt.Errorf("LUT size %q is not between 1 and %d", s, lib.MaxSize())
	}
	return k, nil
}

// newQueryCompleter completes query names and the library's LUT sizes.
func newQueryCompleter(lib *lutlib.Library) *readline.PrefixCompleter {
	sizes := make([]readline.PrefixCompleterInterface, 0, lib.MaxSize())
	for k := 1; k <= lib.MaxSize(); k++ {
		sizes = append(sizes, readline.PcItem(strconv.Itoa(k)))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("area", sizes...),
		readline.PcItem("delay", sizes...),
		readline.PcItem("delays", sizes...),
		readline.PcItem("fastest"),
		readline.PcItem("slowest"),
		readline.PcItem("discrete"),
		readline.PcItem("max"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
