package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

// engineID identifies the analysis engine in the generic-issue document.
const engineID = "PYLINT"

// SonarRenderer renders messages as a SonarQube generic-issue JSON document
type SonarRenderer struct{}

// issue is one record of the generic-issue document. Field order matches
// the format SonarQube documents.
type issue struct {
	EngineID        string          `json:"engineId"`
	RuleID          string          `json:"ruleId"`
	Type            types.IssueType `json:"type"`
	PrimaryLocation location        `json:"primaryLocation"`
	Severity        types.Severity  `json:"severity"`
	EffortMinutes   int             `json:"effortMinutes"`
}

type location struct {
	Message   string    `json:"message"`
	FilePath  string    `json:"filePath"`
	TextRange textRange `json:"textRange"`
}

type textRange struct {
	StartLine   int  `json:"startLine"`
	StartColumn int  `json:"startColumn"`
	EndLine     *int `json:"endLine,omitempty"`
	EndColumn   *int `json:"endColumn,omitempty"`
}

type document struct {
	Issues []issue `json:"issues"`
}

// Render writes the messages as {"issues": [...]}, resolving severity,
// effort, and type through the rule table. The document is marshaled in
// full before anything is written, so a failed encode produces no output.
func (r *SonarRenderer) Render(w io.Writer, messages []types.Message, table *rules.Table) error {
	doc := document{Issues: make([]issue, 0, len(messages))}
	for _, msg := range messages {
		doc.Issues = append(doc.Issues, toIssue(msg, table))
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func toIssue(msg types.Message, table *rules.Table) issue {
	return issue{
		EngineID: engineID,
		RuleID:   msg.MsgID,
		Type:     table.Type(msg.MsgID),
		PrimaryLocation: location{
			Message:  msg.Msg,
			FilePath: msg.Path,
			TextRange: textRange{
				StartLine:   msg.Line,
				StartColumn: msg.Column,
				EndLine:     msg.EndLine,
				EndColumn:   msg.EndColumn,
			},
		},
		Severity:      table.Severity(msg.MsgID),
		EffortMinutes: table.Effort(msg.MsgID),
	}
}
