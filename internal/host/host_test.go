package host

import (
	"errors"
	"io"
	"testing"

	"github.com/lintkit/sonarjson/internal/catalog"
	"github.com/lintkit/sonarjson/internal/types"
)

// recordingReporter captures handled messages for assertions.
type recordingReporter struct {
	messages  []types.Message
	finalized int
}

func (r *recordingReporter) Handle(msg types.Message) {
	r.messages = append(r.messages, msg)
}

func (r *recordingReporter) Finalize(w io.Writer) error {
	r.finalized++
	return nil
}

func testCatalog() *catalog.Store {
	s := catalog.NewStore()
	s.Add("E0102", "function-redefined")
	s.Add("W0611", "unused-import")
	return s
}

func TestEmitPreservesOrder(t *testing.T) {
	h := New(testCatalog(), nil)
	reporter := &recordingReporter{}
	h.Register(reporter)

	for _, id := range []string{"W0611", "E0102", "W0611"} {
		h.Emit(types.Message{MsgID: id})
	}

	want := []string{"W0611", "E0102", "W0611"}
	if len(reporter.messages) != len(want) {
		t.Fatalf("got %d messages, want %d", len(reporter.messages), len(want))
	}
	for i, id := range want {
		if reporter.messages[i].MsgID != id {
			t.Errorf("messages[%d].MsgID = %s, want %s", i, reporter.messages[i].MsgID, id)
		}
	}
}

func TestDisableDropsMessages(t *testing.T) {
	h := New(testCatalog(), nil)
	reporter := &recordingReporter{}
	h.Register(reporter)

	h.Disable("W0611")
	h.Emit(types.Message{MsgID: "W0611"})
	h.Emit(types.Message{MsgID: "E0102"})

	if len(reporter.messages) != 1 || reporter.messages[0].MsgID != "E0102" {
		t.Errorf("expected only E0102, got %v", reporter.messages)
	}

	h.Enable("W0611")
	h.Emit(types.Message{MsgID: "W0611"})
	if len(reporter.messages) != 2 {
		t.Errorf("re-enabled message should be reported, got %d messages", len(reporter.messages))
	}
}

func TestEnabled(t *testing.T) {
	h := New(testCatalog(), nil)

	if !h.Enabled("E0102") {
		t.Error("messages start enabled")
	}
	h.Disable("E0102")
	if h.Enabled("E0102") {
		t.Error("disabled message reported as enabled")
	}
}

func TestEmittable(t *testing.T) {
	h := New(testCatalog(), nil)
	ids, err := h.Emittable()
	if err != nil {
		t.Fatalf("Emittable error: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 emittable ids, got %d", len(ids))
	}
}

func TestEmittableWithoutEnumeration(t *testing.T) {
	h := New(catalog.Permissive{}, nil)
	if _, err := h.Emittable(); !errors.Is(err, ErrNoEnumeration) {
		t.Errorf("expected ErrNoEnumeration, got %v", err)
	}
}

func TestFinalize(t *testing.T) {
	h := New(testCatalog(), nil)

	if err := h.Finalize(io.Discard); !errors.Is(err, ErrNoReporter) {
		t.Errorf("expected ErrNoReporter, got %v", err)
	}

	reporter := &recordingReporter{}
	h.Register(reporter)
	if err := h.Finalize(io.Discard); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if reporter.finalized != 1 {
		t.Errorf("reporter finalized %d times, want 1", reporter.finalized)
	}
}
