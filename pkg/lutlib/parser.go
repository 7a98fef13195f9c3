package lutlib

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("value is not finite")

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets the parser's logger. Diagnostics are logged at DEBUG;
// callers report them from the returned slice.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStrict makes any diagnostic a fatal ErrStrict error.
func WithStrict(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// Parser reads LUT libraries. The zero value is not usable; call NewParser.
type Parser struct {
	logger *slog.Logger
	strict bool
}

// NewParser creates a parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a library with default options.
func Parse(r io.Reader, name string) (*Library, []Diagnostic, error) {
	return NewParser().Parse(r, name)
}

// ReadFile opens and parses the library at path. The library is named after
// the path. A file that cannot be opened yields an *OpenError.
func ReadFile(path string, opts ...ParserOption) (*Library, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &OpenError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return NewParser(opts...).Parse(f, path)
}

// Parse reads a library from r. Entries must list sizes 1, 2, 3, ... in
// order; any structural problem aborts the parse and no library is returned.
// Sanity findings are returned as diagnostics alongside a valid library.
func (p *Parser) Parse(r io.Reader, name string) (*Library, []Diagnostic, error) {
	if r == nil {
		return nil, nil, ErrNilSource
	}

	lib := &Library{name: name}
	var scanErr error

	for ln := range lines(r, &scanErr) {
		entry, ok, err := p.parseLine(ln, lib)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		if len(entry.Delays) > 1 {
			lib.varPinDelay = true
		}
		lib.entries = append(lib.entries, entry)
	}
	if scanErr != nil {
		return nil, nil, fmt.Errorf("reading LUT library %s: %w", name, scanErr)
	}

	diags := Validate(lib)
	for _, d := range diags {
		p.logger.Debug(d.Message,
			slog.String("library", name),
			slog.String("rule", d.RuleID),
			slog.Int("size", d.Size),
			slog.Int("pin", d.Pin),
			slog.Float64("value", d.Value),
		)
	}

	if p.strict && len(diags) > 0 {
		for i := range diags {
			diags[i].Severity = SeverityError
		}
		return nil, diags, &ParseError{
			Source: name,
			Size:   lib.MaxSize(),
			Kind:   ErrStrict,
			Detail: fmt.Sprintf("%d warning(s)", len(diags)),
		}
	}

	p.logger.Debug("parsed LUT library",
		slog.String("library", name),
		slog.Int("max_size", lib.MaxSize()),
		slog.Bool("variable_pin_delays", lib.varPinDelay),
	)
	return lib, diags, nil
}

// parseLine turns one line into an entry for the next expected size. It
// reports ok=false for blank and comment lines.
func (p *Parser) parseLine(ln line, lib *Library) (Entry, bool, error) {
	ts := newTokenStream(ln.text)
	defer ts.Close()

	tok, ok := ts.Next()
	if !ok || strings.HasPrefix(tok, "#") {
		return Entry{}, false, nil
	}

	size := lib.MaxSize() + 1
	fail := func(kind error, detail string, cause error) (Entry, bool, error) {
		return Entry{}, false, &ParseError{
			Source: lib.name,
			Line:   ln.num,
			Size:   size,
			Kind:   kind,
			Detail: detail,
			Err:    cause,
		}
	}

	got, err := strconv.Atoi(tok)
	if err != nil {
		return fail(ErrInvalidNumber, fmt.Sprintf("LUT size %q", tok), err)
	}
	if got != size {
		return fail(ErrSequence, fmt.Sprintf("expected LUT %d, found %d", size, got), nil)
	}

	tok, ok = ts.Next()
	if !ok {
		return fail(ErrMissingArea, fmt.Sprintf("LUT %d", size), nil)
	}
	area, err := parseValue(tok)
	if err != nil {
		return fail(ErrInvalidNumber, fmt.Sprintf("area of LUT %d: %q", size, tok), err)
	}

	var delays []float64
	for tok, ok = ts.Next(); ok; tok, ok = ts.Next() {
		d, err := parseValue(tok)
		if err != nil {
			return fail(ErrInvalidNumber, fmt.Sprintf("delay %d of LUT %d: %q", len(delays), size, tok), err)
		}
		delays = append(delays, d)
	}

	if len(delays) > size {
		return fail(ErrTooManyPins,
			fmt.Sprintf("LUT %d has too many pins (%d), max allowed is %d", size, len(delays), size), nil)
	}
	if size == MaxLutSize {
		return fail(ErrSizeCeiling, fmt.Sprintf("sizes must stay below %d", MaxLutSize), nil)
	}

	return Entry{Size: size, Area: area, Delays: delays}, true, nil
}

func parseValue(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
