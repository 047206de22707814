package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IssueType classifies an issue for SonarQube
type IssueType int

const (
	// TypeCodeSmell is a maintainability issue
	TypeCodeSmell IssueType = iota
	// TypeBug is a reliability issue
	TypeBug
	// TypeVulnerability is a security issue
	TypeVulnerability
)

// DefaultType is used for messages with no type override.
const DefaultType = TypeCodeSmell

// AllowedTypes lists every valid issue type token.
var AllowedTypes = []string{"BUG", "VULNERABILITY", "CODE_SMELL"}

// String returns the string representation of the issue type
func (t IssueType) String() string {
	switch t {
	case TypeBug:
		return "BUG"
	case TypeVulnerability:
		return "VULNERABILITY"
	case TypeCodeSmell:
		return "CODE_SMELL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (t IssueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseIssueType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseIssueType parses a string into an IssueType
func ParseIssueType(s string) (IssueType, error) {
	switch strings.ToUpper(s) {
	case "BUG":
		return TypeBug, nil
	case "VULNERABILITY":
		return TypeVulnerability, nil
	case "CODE_SMELL":
		return TypeCodeSmell, nil
	default:
		return TypeCodeSmell, fmt.Errorf("%s is not one of %s", s, strings.Join(AllowedTypes, ", "))
	}
}
