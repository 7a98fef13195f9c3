// Package lutlib models LUT technology libraries.
//
// A library describes, for every lookup-table size k from 1 up to the
// library's maximum, the area of a k-input LUT and the delay from each of its
// input pins to the output. Technology mappers consume a library through the
// read-only accessors and queries defined here.
//
// # File format
//
// Libraries are read from a line-oriented text format:
//
//	# k  area  delay...
//	1    0.00  0.00
//	2    1.00  1.00 1.00
//	3    1.00  1.00 1.20 1.40
//
// Each entry starts with the LUT size, which must count up from 1 without
// gaps, followed by the area and then one or more pin delays. A single delay
// applies to every pin (uniform mode). Supplying more than one delay for any
// size switches the whole library into variable-pin-delay mode, where pins
// are expected to be listed in non-decreasing delay order.
//
// # Errors and diagnostics
//
// Structural problems (out-of-sequence sizes, too many pin delays, sizes at
// the MaxLutSize ceiling, malformed numbers) abort the parse with a
// *ParseError. Numeric sanity problems (non-positive delays, pins out of
// order, negative areas) are reported as Diagnostic values and never affect
// the returned library.
//
// # Usage
//
//	lib, diags, err := lutlib.ReadFile("k6.lib")
//	if err != nil {
//		return err
//	}
//	for _, d := range diags {
//		log.Println(d)
//	}
//	fmt.Println(lib.SlowestPinDelay())
package lutlib
