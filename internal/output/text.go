package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

// TextRenderer renders messages in a human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes one line per message followed by a severity summary
func (r *TextRenderer) Render(w io.Writer, messages []types.Message, table *rules.Table) error {
	if !r.ColorEnabled {
		color.NoColor = true
	}

	counts := make(map[types.Severity]int)
	for _, msg := range messages {
		severity := table.Severity(msg.MsgID)
		counts[severity]++
		r.renderMessage(w, msg, severity)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%d issues (%d blocker, %d critical, %d major, %d minor, %d info)\n",
		len(messages),
		counts[types.SeverityBlocker],
		counts[types.SeverityCritical],
		counts[types.SeverityMajor],
		counts[types.SeverityMinor],
		counts[types.SeverityInfo],
	)
	return nil
}

func (r *TextRenderer) renderMessage(w io.Writer, msg types.Message, severity types.Severity) {
	fmt.Fprintf(w, "%-8s  %s  %s:%d:%d  %s\n",
		r.colorSeverity(severity), msg.MsgID, msg.Path, msg.Line, msg.Column, msg.Msg)
}

func (r *TextRenderer) colorSeverity(s types.Severity) string {
	switch s {
	case types.SeverityBlocker, types.SeverityCritical:
		return color.RedString(s.String())
	case types.SeverityMajor:
		return color.YellowString(s.String())
	case types.SeverityMinor:
		return color.CyanString(s.String())
	default:
		return s.String()
	}
}
