package rules

import "fmt"

// InvalidRuleError is returned when a rule-table entry fails validation.
type InvalidRuleError struct {
	// Entry is the raw rule entry as given by the user
	Entry string

	// Detail explains which part of the entry is invalid
	Detail string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", e.Entry, e.Detail)
}
