// Package ingest reads pylint JSON reports (--output-format=json) into
// diagnostic messages, preserving report order.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lintkit/sonarjson/internal/types"
)

// record mirrors one element of pylint's JSON report.
type record struct {
	Type      string `json:"type"`
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   *int   `json:"endLine"`
	EndColumn *int   `json:"endColumn"`
	Path      string `json:"path"`
	Symbol    string `json:"symbol"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
}

// Read parses a pylint JSON report from r.
func Read(r io.Reader) ([]types.Message, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse pylint report: %w", err)
	}

	messages := make([]types.Message, len(records))
	for i, rec := range records {
		messages[i] = types.Message{
			MsgID:     rec.MessageID,
			Symbol:    rec.Symbol,
			Msg:       rec.Message,
			Path:      rec.Path,
			Line:      rec.Line,
			Column:    rec.Column,
			EndLine:   rec.EndLine,
			EndColumn: rec.EndColumn,
		}
	}
	return messages, nil
}

// ReadFile parses a pylint JSON report from a file.
func ReadFile(path string) ([]types.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()
	return Read(f)
}
