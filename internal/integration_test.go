package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lintkit/sonarjson/internal/host"
	"github.com/lintkit/sonarjson/internal/ingest"
	"github.com/lintkit/sonarjson/internal/output"
	"github.com/lintkit/sonarjson/internal/rules"
)

const report = `[
    {"type": "convention", "module": "a", "obj": "", "line": 3, "column": 5,
     "endLine": null, "endColumn": null, "path": "a.py",
     "symbol": "bad-whitespace", "message": "bad spacing", "message-id": "C0326"},
    {"type": "error", "module": "a", "obj": "f", "line": 7, "column": 0,
     "endLine": 7, "endColumn": 12, "path": "a.py",
     "symbol": "function-redefined", "message": "function already defined", "message-id": "E0102"},
    {"type": "warning", "module": "b", "obj": "", "line": 1, "column": 0,
     "endLine": null, "endColumn": null, "path": "b.py",
     "symbol": "unused-import", "message": "unused import os", "message-id": "W0611"}
]`

func runPipeline(t *testing.T, table *rules.Table, restrict bool) string {
	t.Helper()

	h := host.New(pipelineCatalog{}, nil)
	h.Register(output.NewReporter(table, &output.SonarRenderer{}))

	if restrict {
		if err := table.Restrict(h); err != nil {
			t.Fatalf("Restrict error: %v", err)
		}
	}

	messages, err := ingest.Read(strings.NewReader(report))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	for _, msg := range messages {
		h.Emit(msg)
	}

	var buf bytes.Buffer
	if err := h.Finalize(&buf); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	return buf.String()
}

func ruleIDs(t *testing.T, doc string) []string {
	t.Helper()
	var parsed struct {
		Issues []struct {
			RuleID string `json:"ruleId"`
		} `json:"issues"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("invalid report JSON: %v", err)
	}
	ids := make([]string, len(parsed.Issues))
	for i, issue := range parsed.Issues {
		ids[i] = issue.RuleID
	}
	return ids
}

func TestPipeline_FullReport(t *testing.T) {
	table := rules.NewTable(nil)
	if err := table.Load([]string{"E0102:MAJOR:15:BUG"}, pipelineCatalog{}); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc := runPipeline(t, table, false)
	ids := ruleIDs(t, doc)
	want := []string{"C0326", "E0102", "W0611"}
	if len(ids) != len(want) {
		t.Fatalf("got %d issues, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("issues[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestPipeline_RestrictToConfigured(t *testing.T) {
	table := rules.NewTable(nil)
	if err := table.Load([]string{"E0102"}, pipelineCatalog{}); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	doc := runPipeline(t, table, true)
	ids := ruleIDs(t, doc)
	if len(ids) != 1 || ids[0] != "E0102" {
		t.Errorf("restricted report should only contain E0102, got %v", ids)
	}
}

// pipelineCatalog enumerates exactly the message ids the test report uses.
type pipelineCatalog struct{}

func (pipelineCatalog) Known(msgID string) bool {
	for _, id := range pipelineIDs {
		if id == msgID {
			return true
		}
	}
	return false
}

func (pipelineCatalog) Emittable() []string {
	return pipelineIDs
}

var pipelineIDs = []string{"C0326", "E0102", "W0611"}

