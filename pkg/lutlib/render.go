package lutlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the library in the text format accepted by Parse: a short
// comment header, then one line per size with the area and either the shared
// delay or one delay per pin.
func (l *Library) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprint(cw, "# The area/delay of k-variable LUTs:\n")
	fmt.Fprint(cw, "# k    area     delay\n")
	variable := l.VariablePinDelays()
	for _, e := range l.list() {
		if variable {
			fmt.Fprintf(cw, "%d   %7.2f  ", e.Size, e.Area)
			for pin := 0; pin < e.Size; pin++ {
				fmt.Fprintf(cw, " %7.2f", l.PinDelay(e.Size, pin))
			}
			fmt.Fprint(cw, "\n")
		} else {
			fmt.Fprintf(cw, "%d   %7.2f   %7.2f\n", e.Size, e.Area, l.PinDelay(e.Size, 0))
		}
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// String renders the library as WriteTo does.
func (l *Library) String() string {
	var sb strings.Builder
	_, _ = l.WriteTo(&sb)
	return sb.String()
}

// countingWriter tracks bytes written and keeps the first error.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
