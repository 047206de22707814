package pathfilter

import (
	"testing"

	"github.com/lintkit/sonarjson/internal/types"
)

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		path    string
		want    bool
	}{
		{"default matches everything", []string{"**"}, nil, "pkg/a.py", true},
		{"include match", []string{"src/**"}, nil, "src/a.py", true},
		{"include miss", []string{"src/**"}, nil, "tests/a.py", false},
		{"exclude wins", []string{"**"}, []string{"tests/**"}, "tests/a.py", false},
		{"exclude miss", []string{"**"}, []string{"tests/**"}, "src/a.py", true},
		{"windows separators normalized", []string{"src/**"}, nil, `src\a.py`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.include, tt.exclude)
			got, err := f.MatchPath(tt.path)
			if err != nil {
				t.Fatalf("MatchPath error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	f := New([]string{"**"}, []string{"vendor/**"})
	messages := []types.Message{
		{MsgID: "C0326", Path: "a.py"},
		{MsgID: "E0102", Path: "vendor/b.py"},
		{MsgID: "W0611", Path: "pkg/c.py"},
	}

	got, err := f.Messages(messages)
	if err != nil {
		t.Fatalf("Messages error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].MsgID != "C0326" || got[1].MsgID != "W0611" {
		t.Errorf("unexpected messages after filtering: %v", got)
	}
}

func TestDefaultFilter(t *testing.T) {
	match, err := DefaultFilter().MatchPath("any/path/at/all.py")
	if err != nil {
		t.Fatalf("MatchPath error: %v", err)
	}
	if !match {
		t.Error("default filter should match every path")
	}
}
