package lutlib

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// line is one physical line of library text.
type line struct {
	num  int
	text string
}

// lines yields the lines of r with their 1-based numbers. The scan error, if
// any, is reported through errp once the sequence ends.
func lines(r io.Reader, errp *error) iter.Seq[line] {
	return func(yield func(line) bool) {
		sc := bufio.NewScanner(r)
		n := 0
		for sc.Scan() {
			n++
			if !yield(line{num: n, text: sc.Text()}) {
				return
			}
		}
		*errp = sc.Err()
	}
}

// tokenStream pulls whitespace-separated tokens from a line one at a time.
// It never modifies the line and cannot be rewound.
type tokenStream struct {
	next func() (string, bool)
	stop func()
}

func newTokenStream(text string) *tokenStream {
	next, stop := iter.Pull(strings.FieldsSeq(text))
	return &tokenStream{next: next, stop: stop}
}

// Next returns the next token and whether one was available.
func (ts *tokenStream) Next() (string, bool) {
	return ts.next()
}

// Close releases the underlying iterator.
func (ts *tokenStream) Close() {
	ts.stop()
}
