// Package output renders accumulated diagnostic messages, either as the
// SonarQube generic-issue JSON document or as human-readable text.
package output

import (
	"io"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

// Reporter accumulates messages during a run and renders them on finalize.
// It implements the host's Reporter contract: messages are appended in
// arrival order, without deduplication, and drained exactly once.
type Reporter struct {
	table    *rules.Table
	renderer Renderer
	messages []types.Message
}

// NewReporter creates a Reporter resolving severities through the table.
func NewReporter(table *rules.Table, renderer Renderer) *Reporter {
	return &Reporter{
		table:    table,
		renderer: renderer,
	}
}

// Handle appends a message to the report.
func (r *Reporter) Handle(msg types.Message) {
	r.messages = append(r.messages, msg)
}

// Len returns the number of accumulated messages.
func (r *Reporter) Len() int {
	return len(r.messages)
}

// Finalize renders the accumulated messages to w.
func (r *Reporter) Finalize(w io.Writer) error {
	return r.renderer.Render(w, r.messages, r.table)
}
