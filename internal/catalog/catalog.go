// Package catalog provides the emittable-message catalog the rule table is
// validated against. The effective catalog depends on the analysis engine
// version, so callers can swap the builtin table for one read from a file,
// or disable validation entirely with the permissive catalog.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Catalog answers whether a message id can be emitted by the analysis engine.
type Catalog interface {
	Known(msgID string) bool
}

// Enumerator is implemented by catalogs that can list every emittable
// message id. Restricting the run to configured messages requires it.
type Enumerator interface {
	Emittable() []string
}

// Entry is a single catalog record.
type Entry struct {
	MsgID  string
	Symbol string
}

// Store is an in-memory catalog that preserves insertion order.
type Store struct {
	symbols map[string]string
	order   []string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{symbols: make(map[string]string)}
}

// Add records a message id with its symbol. Re-adding an id updates the
// symbol without duplicating the id.
func (s *Store) Add(msgID, symbol string) {
	if _, exists := s.symbols[msgID]; !exists {
		s.order = append(s.order, msgID)
	}
	s.symbols[msgID] = symbol
}

// Known returns true if the message id is in the catalog.
func (s *Store) Known(msgID string) bool {
	_, ok := s.symbols[msgID]
	return ok
}

// Symbol returns the symbol for a message id.
func (s *Store) Symbol(msgID string) (string, bool) {
	sym, ok := s.symbols[msgID]
	return sym, ok
}

// Emittable returns all message ids in insertion order.
func (s *Store) Emittable() []string {
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

// Entries returns all catalog records in insertion order.
func (s *Store) Entries() []Entry {
	result := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, Entry{MsgID: id, Symbol: s.symbols[id]})
	}
	return result
}

// Len returns the number of catalog records.
func (s *Store) Len() int {
	return len(s.order)
}

var (
	builtinOnce sync.Once
	builtin     *Store
)

// Builtin returns the embedded pylint message catalog.
func Builtin() *Store {
	builtinOnce.Do(func() {
		s, err := parse(strings.NewReader(builtinData))
		if err != nil {
			// The embedded table is validated by tests; a parse error
			// here means the binary itself is broken.
			panic(fmt.Sprintf("builtin catalog: %v", err))
		}
		builtin = s
	})
	return builtin
}

// FromFile loads a catalog from a msgid table file. Each line holds a
// "<msgid> <symbol>" pair; blank lines and '#' comments are skipped.
func FromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	s, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return s, nil
}

func parse(r io.Reader) (*Store, error) {
	s := NewStore()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: expected \"<msgid> <symbol>\", got %q", lineNo, line)
		}
		symbol := ""
		if len(fields) == 2 {
			symbol = fields[1]
		}
		s.Add(fields[0], symbol)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Permissive is a catalog that accepts every message id. It cannot
// enumerate, so restricting the run to configured messages fails against it.
type Permissive struct{}

// Known always returns true.
func (Permissive) Known(string) bool {
	return true
}
