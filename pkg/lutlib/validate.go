package lutlib

import "fmt"

// Validate checks the numeric sanity of a library. Every finding is a
// warning: the library stays usable, but technology mapping may not behave
// as intended.
//
// In variable-pin-delay mode every pin of every size must have a positive
// delay, and pins must be listed in non-decreasing delay order. In uniform
// mode only the shared delay of each size is checked. Areas must not be
// negative in either mode.
func Validate(lib *Library) []Diagnostic {
	if lib == nil {
		return nil
	}

	var diags []Diagnostic
	for size := 1; size <= lib.MaxSize(); size++ {
		if lib.varPinDelay {
			for pin := 0; pin < size; pin++ {
				delay := lib.PinDelay(size, pin)
				if delay <= 0 {
					diags = append(diags, nonPositiveDelay(size, pin, delay))
				}
				if pin > 0 {
					if prev := lib.PinDelay(size, pin-1); prev > delay {
						diags = append(diags, Diagnostic{
							RuleID:   RulePinOrder,
							Severity: SeverityWarning,
							Size:     size,
							Pin:      pin,
							Value:    delay,
							Message: fmt.Sprintf("pin %d of LUT %d has delay %f, pin %d of LUT %d has delay %f; pin delays should be in non-decreasing order",
								pin-1, size, prev, pin, size, delay),
						})
					}
				}
			}
		} else if delay := lib.PinDelay(size, 0); delay <= 0 {
			diags = append(diags, Diagnostic{
				RuleID:   RuleNonPositiveDelay,
				Severity: SeverityWarning,
				Size:     size,
				Pin:      0,
				Value:    delay,
				Message:  fmt.Sprintf("LUT %d has delay %f; pin delays should be positive numbers", size, delay),
			})
		}

		if area := lib.Area(size); area < 0 {
			diags = append(diags, Diagnostic{
				RuleID:   RuleNegativeArea,
				Severity: SeverityWarning,
				Size:     size,
				Pin:      -1,
				Value:    area,
				Message:  fmt.Sprintf("LUT %d has area %f; areas should be non-negative numbers", size, area),
			})
		}
	}
	return diags
}

func nonPositiveDelay(size, pin int, delay float64) Diagnostic {
	return Diagnostic{
		RuleID:   RuleNonPositiveDelay,
		Severity: SeverityWarning,
		Size:     size,
		Pin:      pin,
		Value:    delay,
		Message:  fmt.Sprintf("pin %d of LUT %d has delay %f; pin delays should be positive numbers", pin, size, delay),
	}
}
