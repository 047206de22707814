package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the SonarQube severity level of an issue
type Severity int

const (
	// SeverityInfo is purely informational
	SeverityInfo Severity = iota
	// SeverityMinor is unlikely to impact program behavior
	SeverityMinor
	// SeverityMajor may impact program behavior
	SeverityMajor
	// SeverityCritical is likely to impact program behavior or security
	SeverityCritical
	// SeverityBlocker must be fixed before anything else
	SeverityBlocker
)

// DefaultSeverity is used for messages with no severity override.
const DefaultSeverity = SeverityMinor

// AllowedSeverities lists every valid severity token, most severe first.
var AllowedSeverities = []string{"BLOCKER", "CRITICAL", "MAJOR", "MINOR", "INFO"}

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityBlocker:
		return "BLOCKER"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "BLOCKER":
		return SeverityBlocker, nil
	case "CRITICAL":
		return SeverityCritical, nil
	case "MAJOR":
		return SeverityMajor, nil
	case "MINOR":
		return SeverityMinor, nil
	case "INFO":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("%s is not one of %s", s, strings.Join(AllowedSeverities, ", "))
	}
}

// AtLeast returns true if this severity is at least as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}
