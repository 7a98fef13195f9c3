package lutlib

import (
	"fmt"
	"strings"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError is reserved for diagnostics promoted by strict mode.
	SeverityError Severity = iota
	// SeverityWarning marks a numeric sanity problem that does not
	// invalidate the library.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityWarning, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = sev
	return nil
}

// Rule identifiers attached to diagnostics.
const (
	RuleNonPositiveDelay = "LUT001"
	RulePinOrder         = "LUT002"
	RuleNegativeArea     = "LUT003"
)

// Diagnostic is a non-fatal finding about a parsed library.
type Diagnostic struct {
	RuleID   string   `json:"rule_id" yaml:"rule_id"`
	Severity Severity `json:"severity" yaml:"severity"`
	Size     int      `json:"size" yaml:"size"`
	Pin      int      `json:"pin" yaml:"pin"` // -1 when the finding is not about a pin
	Value    float64  `json:"value" yaml:"value"`
	Message  string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.RuleID, d.Message)
}
