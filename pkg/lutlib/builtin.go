package lutlib

import "fmt"

// Preset size range accepted by Simple.
const (
	MinSimpleSize = 3
	MaxSimpleSize = 10
)

// SimpleName is the name given to preset libraries.
const SimpleName = "lutlib"

// Simple returns the unit library for n-input LUTs: uniform delays, with
// area and delay 1 for every size except size 1, which is free. Each call
// returns a new library. Simple panics unless MinSimpleSize <= n <= MaxSimpleSize.
func Simple(n int) *Library {
	if n < MinSimpleSize || n > MaxSimpleSize {
		panic(fmt.Sprintf("lutlib: preset size %d outside %d..%d", n, MinSimpleSize, MaxSimpleSize))
	}

	lib := &Library{name: SimpleName, entries: make([]Entry, n)}
	for k := 1; k <= n; k++ {
		v := 1.0
		if k == 1 {
			v = 0
		}
		lib.entries[k-1] = Entry{Size: k, Area: v, Delays: []float64{v}}
	}
	return lib
}

// SimpleSizes lists the sizes Simple accepts.
func SimpleSizes() []int {
	sizes := make([]int, 0, MaxSimpleSize-MinSimpleSize+1)
	for n := MinSimpleSize; n <= MaxSimpleSize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}
