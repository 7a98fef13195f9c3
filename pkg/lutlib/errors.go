package lutlib

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a library could not be read. A *ParseError
// matches its kind with errors.Is.
var (
	// ErrNilSource is returned when Parse is handed a nil reader.
	ErrNilSource = errors.New("no library source")

	// ErrOpen is matched by *OpenError.
	ErrOpen = errors.New("cannot open library file")

	// ErrSequence is returned when an entry's size does not match the
	// running count of accepted entries.
	ErrSequence = errors.New("LUT size out of sequence")

	// ErrTooManyPins is returned when an entry supplies more delays than
	// its size has pins.
	ErrTooManyPins = errors.New("too many pin delays")

	// ErrSizeCeiling is returned when an entry reaches MaxLutSize.
	ErrSizeCeiling = errors.New("LUT size reaches the maximum supported size")

	// ErrMissingArea is returned when an entry has a size but no area.
	ErrMissingArea = errors.New("missing LUT area")

	// ErrInvalidNumber is returned when a size, area or delay token is not
	// a number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrStrict is returned in strict mode when validation reports any
	// diagnostic.
	ErrStrict = errors.New("library has sanity warnings")
)

// ParseError is a fatal problem found while reading a library.
type ParseError struct {
	Source string // library name, usually the file path
	Line   int    // 1-based line number, 0 when not tied to a line
	Size   int    // the LUT size expected at that point
	Kind   error  // one of the sentinel errors above
	Detail string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, msg)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// OpenError reports that a library file could not be opened. It is kept
// apart from ParseError so callers can tell a missing file from a malformed
// one.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open LUT library file %q: %v", e.Path, e.Err)
}

// Unwrap exposes ErrOpen and the underlying OS error.
func (e *OpenError) Unwrap() []error {
	return []error{ErrOpen, e.Err}
}
