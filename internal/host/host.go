// Package host stands in for the linter process driving an analysis run.
// It owns the emittable-message catalog, the enabled-message set, and the
// registered reporter, and it drives the run as a linear pipeline: emit
// messages one at a time, then finalize exactly once.
package host

import (
	"errors"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/lintkit/sonarjson/internal/catalog"
	"github.com/lintkit/sonarjson/internal/types"
)

// ErrNoEnumeration is returned when an operation needs the full list of
// emittable messages but the catalog cannot provide one.
var ErrNoEnumeration = errors.New("catalog cannot enumerate emittable messages")

// ErrNoReporter is returned when Finalize is called with no reporter registered.
var ErrNoReporter = errors.New("no reporter registered")

// Reporter consumes diagnostic messages during a run and writes the final
// report when the run ends.
type Reporter interface {
	// Handle is called once per emitted message, in emission order
	Handle(msg types.Message)

	// Finalize writes the report. It is called exactly once, after the
	// last message.
	Finalize(w io.Writer) error
}

// Host wires a catalog and a reporter together for a single run.
type Host struct {
	cat      catalog.Catalog
	reporter Reporter
	disabled map[string]bool
	logger   hclog.Logger
}

// New creates a Host with all catalog messages enabled.
func New(cat catalog.Catalog, logger hclog.Logger) *Host {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Host{
		cat:      cat,
		disabled: make(map[string]bool),
		logger:   logger,
	}
}

// Register sets the reporter receiving emitted messages.
func (h *Host) Register(r Reporter) {
	h.reporter = r
}

// Emittable lists every message id the catalog knows. It fails with
// ErrNoEnumeration if the catalog has no message list.
func (h *Host) Emittable() ([]string, error) {
	e, ok := h.cat.(catalog.Enumerator)
	if !ok {
		return nil, ErrNoEnumeration
	}
	return e.Emittable(), nil
}

// Enable allows a message id to be reported.
func (h *Host) Enable(msgID string) {
	delete(h.disabled, msgID)
}

// Disable suppresses a message id.
func (h *Host) Disable(msgID string) {
	h.disabled[msgID] = true
}

// Enabled returns true if the message id is currently reported.
func (h *Host) Enabled(msgID string) bool {
	return !h.disabled[msgID]
}

// Emit streams a message to the reporter, dropping it if its id is disabled.
func (h *Host) Emit(msg types.Message) {
	if h.disabled[msg.MsgID] {
		h.logger.Debug("dropping disabled message", "id", msg.MsgID, "path", msg.Path)
		return
	}
	if h.reporter != nil {
		h.reporter.Handle(msg)
	}
}

// Finalize ends the run, handing the reporter the output writer.
func (h *Host) Finalize(w io.Writer) error {
	if h.reporter == nil {
		return ErrNoReporter
	}
	return h.reporter.Finalize(w)
}
