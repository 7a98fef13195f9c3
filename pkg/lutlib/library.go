package lutlib

import "math"

// MaxLutSize is the implementation ceiling on LUT size. An entry whose size
// reaches it is rejected, so a valid library never exceeds MaxLutSize-1.
const MaxLutSize = 32

// Entry holds the characteristics of one LUT size.
type Entry struct {
	Size   int       `json:"size" yaml:"size"`
	Area   float64   `json:"area" yaml:"area"`
	Delays []float64 `json:"delays" yaml:"delays"` // as supplied; 1 value in uniform mode
}

// Library is an immutable LUT library. Build one with Parse, ReadFile or
// Simple. A nil *Library reads as an empty library: every accessor returns
// its zero value, and the pin delay queries return 1.0.
type Library struct {
	name        string
	entries     []Entry // entries[k-1] describes size k
	varPinDelay bool
}

// Name returns the library label.
func (l *Library) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// WithName returns a copy of the library carrying a different name.
func (l *Library) WithName(name string) *Library {
	c := l.Clone()
	if c == nil {
		return nil
	}
	c.name = name
	return c
}

// MaxSize returns the largest LUT size in the library.
func (l *Library) MaxSize() int {
	return len(l.list())
}

// VariablePinDelays reports whether any size supplied more than one pin
// delay. The flag applies to the whole library.
func (l *Library) VariablePinDelays() bool {
	return l != nil && l.varPinDelay
}

// list returns the entries without copying. It is nil for a nil library.
func (l *Library) list() []Entry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Area returns the area of a k-input LUT, or 0 when k is out of range.
func (l *Library) Area(k int) float64 {
	if k < 1 || k > l.MaxSize() {
		return 0
	}
	return l.entries[k-1].Area
}

// Delays returns a copy of the pin delays supplied for size k.
func (l *Library) Delays(k int) []float64 {
	if k < 1 || k > l.MaxSize() {
		return nil
	}
	return append([]float64(nil), l.entries[k-1].Delays...)
}

// PinDelay returns the delay from pin (0-based) to the output of a k-input
// LUT. In uniform mode every pin shares the first delay. In variable mode a
// pin without a supplied value has delay 0.
func (l *Library) PinDelay(k, pin int) float64 {
	if k < 1 || k > l.MaxSize() || pin < 0 || pin >= k {
		return 0
	}
	delays := l.entries[k-1].Delays
	if !l.VariablePinDelays() {
		pin = 0
	}
	if pin >= len(delays) {
		return 0
	}
	return delays[pin]
}

// Entries returns a copy of every entry in size order.
func (l *Library) Entries() []Entry {
	entries := l.list()
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return out
}

// Clone returns a deep copy that shares no storage with l.
func (l *Library) Clone() *Library {
	if l == nil {
		return nil
	}
	return &Library{
		name:        l.name,
		entries:     l.Entries(),
		varPinDelay: l.varPinDelay,
	}
}

// Equal reports whether a and b describe the same library, comparing areas
// and pin delays within tolerance. Names are ignored.
func Equal(a, b *Library, tolerance float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.MaxSize() != b.MaxSize() || a.varPinDelay != b.varPinDelay {
		return false
	}
	for k := 1; k <= a.MaxSize(); k++ {
		if math.Abs(a.Area(k)-b.Area(k)) > tolerance {
			return false
		}
		for pin := 0; pin < k; pin++ {
			if math.Abs(a.PinDelay(k, pin)-b.PinDelay(k, pin)) > tolerance {
				return false
			}
		}
	}
	return true
}

func (e Entry) clone() Entry {
	e.Delays = append([]float64(nil), e.Delays...)
	return e
}
