// Package types defines the core vocabulary shared across the converter:
// severities, issue types, and the diagnostic message itself.
package types

// Message is a single diagnostic produced by the analysis engine.
type Message struct {
	// MsgID is the catalog identifier (e.g., "E0102")
	MsgID string

	// Symbol is the human-readable message name (e.g., "function-redefined")
	Symbol string

	// Msg is the rendered message text
	Msg string

	// Path is the file the message was reported against
	Path string

	// Line is the 1-based start line
	Line int

	// Column is the start column
	Column int

	// EndLine is the end line, nil when the engine did not report one
	EndLine *int

	// EndColumn is the end column, nil when the engine did not report one
	EndColumn *int
}

// DefaultEffort is the remediation effort in minutes for messages with no
// effort override.
const DefaultEffort = 5
