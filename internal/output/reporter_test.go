package output

import (
	"bytes"
	"testing"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

func TestReporterAccumulatesAndFinalizes(t *testing.T) {
	table := rules.NewTable(nil)
	reporter := NewReporter(table, &SonarRenderer{})

	reporter.Handle(types.Message{MsgID: "C0326", Path: "a.py", Line: 1})
	reporter.Handle(types.Message{MsgID: "C0326", Path: "a.py", Line: 1}) // duplicates are kept
	reporter.Handle(types.Message{MsgID: "E0102", Path: "b.py", Line: 2})

	if reporter.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reporter.Len())
	}

	var buf bytes.Buffer
	if err := reporter.Finalize(&buf); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	issues := decodeIssues(t, buf.String())
	if len(issues) != 3 {
		t.Errorf("expected 3 issues, got %d", len(issues))
	}
}
