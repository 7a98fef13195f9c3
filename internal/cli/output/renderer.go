// Package output renders command results for terminals, pipes and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto" // text on a TTY, markdown otherwise
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Mode converts a configured output string into an OutputMode.
// Unknown values map to ModeAuto.
func Mode(s string) OutputMode {
	switch m := OutputMode(s); m {
	case ModeText, ModeMarkdown, ModeJSON, ModeYAML:
		return m
	default:
		return ModeAuto
	}
}

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Title   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   r.NewStyle().Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Renderer writes results to an output and an error stream.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	isTTY     bool
	mode      OutputMode
	styles    *Styles
	errStyles *Styles
	title     cases.Caser
}

// NewRenderer creates a renderer, detecting whether each stream is a
// terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTerminal(out), isTerminal(errOut), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state shared by
// both streams.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTTY, isTTY, mode)
}

func newRenderer(out, errOut io.Writer, outTTY, errTTY bool, mode OutputMode) *Renderer {
	return &Renderer{
		out:       out,
		errOut:    errOut,
		isTTY:     outTTY,
		mode:      mode,
		styles:    newStyles(lipglossRenderer(out, outTTY)),
		errStyles: newStyles(lipglossRenderer(errOut, errTTY)),
		title:     cases.Title(language.English, cases.NoLower),
	}
}

// lipglossRenderer styles for w. A TTY keeps the profile lipgloss detects
// for w; anything else gets no escape codes.
func lipglossRenderer(w io.Writer, isTTY bool) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Out returns the result stream.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Styles returns the text-mode styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v as JSON or YAML depending on the effective mode. It
// reports false when the mode is not a structured one.
func (r *Renderer) Structured(v any) (bool, error) {
	switch r.EffectiveMode() {
	case ModeJSON:
		return true, r.JSON(v)
	case ModeYAML:
		return true, r.YAML(v)
	default:
		return false, nil
	}
}

// Header writes a section title. The title is title-cased in markdown; the
// optional subject, usually a name or path, is written as given.
func (r *Renderer) Header(title, subject string) {
	if subject != "" {
		subject = ": " + subject
	}
	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "## %s%s\n\n", r.title.String(title), subject)
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styles.Title.Render(title)+subject)
}

// Println writes a plain line.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Table writes rows under header as a box table in text mode or a markdown
// table otherwise.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		_, _ = fmt.Fprintln(r.out)
		return
	}
	t.Render()
}

// Warning writes a warning line to the error stream.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.errStyles.Warning.Render("warning: ")+msg)
}

// Error writes an error line to the error stream.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.errStyles.Error.Render("error: ")+msg)
}

// Success writes a success line to the result stream.
func (r *Renderer) Success(msg string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render("ok: ")+msg)
}

// Muted writes a de-emphasised line to the result stream.
func (r *Renderer) Muted(msg string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(msg))
}
