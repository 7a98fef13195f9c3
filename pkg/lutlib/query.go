package lutlib

import "math"

// DelaysAreDiscrete reports whether the first pin delay of every size is a
// whole number. Mappers use it to choose integer delay arithmetic. Only pin
// 0 is inspected, even in variable-pin-delay mode. A nil library has no
// delays and reports true.
func (l *Library) DelaysAreDiscrete() bool {
	for _, e := range l.list() {
		d := l.PinDelay(e.Size, 0)
		if math.Trunc(d) != d {
			return false
		}
	}
	return true
}

// FastestPinDelay returns the delay of pin 0 of the largest LUT. A nil
// library yields 1.0 so callers without a library get unit delays.
func (l *Library) FastestPinDelay() float64 {
	if l == nil {
		return 1.0
	}
	return l.PinDelay(l.MaxSize(), 0)
}

// SlowestPinDelay returns the delay of the last pin of the largest LUT in
// variable-pin-delay mode, or its shared delay in uniform mode. A nil
// library yields 1.0.
func (l *Library) SlowestPinDelay() float64 {
	if l == nil {
		return 1.0
	}
	k := l.MaxSize()
	if l.varPinDelay {
		return l.PinDelay(k, k-1)
	}
	return l.PinDelay(k, 0)
}
