package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltin(t *testing.T) {
	cat := Builtin()

	for _, id := range []string{"C0326", "E0102", "W0611"} {
		if !cat.Known(id) {
			t.Errorf("builtin catalog should know %s", id)
		}
	}
	if cat.Known("X9999") {
		t.Error("builtin catalog should not know X9999")
	}

	if sym, ok := cat.Symbol("E0102"); !ok || sym != "function-redefined" {
		t.Errorf("Symbol(E0102) = %q, %v", sym, ok)
	}

	emittable := cat.Emittable()
	if len(emittable) != cat.Len() {
		t.Errorf("Emittable returned %d ids, catalog has %d", len(emittable), cat.Len())
	}
	if cat.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}
}

func TestFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "msgids")

	content := `# custom catalog
E0102 function-redefined

C9001 local-convention
C9002
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile error: %v", err)
	}

	if cat.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", cat.Len())
	}
	if !cat.Known("C9001") {
		t.Error("catalog should know C9001")
	}
	// Symbol is optional in the table
	if sym, ok := cat.Symbol("C9002"); !ok || sym != "" {
		t.Errorf("Symbol(C9002) = %q, %v, want empty symbol", sym, ok)
	}

	want := []string{"E0102", "C9001", "C9002"}
	got := cat.Emittable()
	for i, id := range want {
		if got[i] != id {
			t.Errorf("Emittable()[%d] = %s, want %s", i, got[i], id)
		}
	}
}

func TestFromFileErrors(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad")
	if err := os.WriteFile(path, []byte("E0102 function-redefined extra-field\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestPermissive(t *testing.T) {
	var cat Catalog = Permissive{}

	if !cat.Known("ANYTHING") {
		t.Error("permissive catalog should accept any id")
	}
	if _, ok := cat.(Enumerator); ok {
		t.Error("permissive catalog should not enumerate")
	}
}

func TestStoreAddIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add("E0102", "function-redefined")
	s.Add("E0102", "function-redefined")

	if s.Len() != 1 {
		t.Errorf("expected 1 entry after duplicate add, got %d", s.Len())
	}
}
