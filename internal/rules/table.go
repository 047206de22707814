// Package rules resolves per-message severity, effort, and issue type.
//
// A rule table is loaded once before any messages are translated, from
// compact entries of the form
//
//	<msgid>[:<severity>[:<effort minutes>[:<type>]]]
//
// Lookups fall back field-by-field to the table defaults for any message
// id without an override.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/lintkit/sonarjson/internal/catalog"
	"github.com/lintkit/sonarjson/internal/types"
)

// Table maps message ids to severity, effort, and issue type overrides.
// Populate it with Load and Add, then treat it as read-only.
type Table struct {
	// DefaultSeverity applies to messages with no severity override
	DefaultSeverity types.Severity

	// DefaultEffort applies to messages with no effort override, in minutes
	DefaultEffort int

	// DefaultType applies to messages with no type override
	DefaultType types.IssueType

	// HaltOnInvalid makes an unknown message id fail the load. When false,
	// unknown ids are reported as warnings and their entries skipped.
	HaltOnInvalid bool

	configured map[string]bool
	order      []string // configured ids in first-seen order
	severities map[string]types.Severity
	efforts    map[string]int
	issueTypes map[string]types.IssueType

	logger hclog.Logger
}

// NewTable creates an empty Table with the builtin defaults.
func NewTable(logger hclog.Logger) *Table {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Table{
		DefaultSeverity: types.DefaultSeverity,
		DefaultEffort:   types.DefaultEffort,
		DefaultType:     types.DefaultType,
		HaltOnInvalid:   true,
		configured:      make(map[string]bool),
		severities:      make(map[string]types.Severity),
		efforts:         make(map[string]int),
		issueTypes:      make(map[string]types.IssueType),
		logger:          logger,
	}
}

// Override is a validated set of per-message overrides, as produced by the
// configuration file. Nil fields are left to fall back to the defaults.
type Override struct {
	MsgID    string
	Severity *types.Severity
	Effort   *int
	Type     *types.IssueType
}

// Load parses rule-table entries and records their overrides, validating
// each message id against the catalog. The first invalid entry stops the
// load, except that unknown ids are skipped with a warning when
// HaltOnInvalid is false.
func (t *Table) Load(entries []string, cat catalog.Catalog) error {
	for _, entry := range entries {
		if err := t.loadEntry(entry, cat); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) loadEntry(entry string, cat catalog.Catalog) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}

	fields := strings.Split(entry, ":")
	msgID := fields[0]
	if !cat.Known(msgID) {
		if t.HaltOnInvalid {
			return &InvalidRuleError{
				Entry:  entry,
				Detail: fmt.Sprintf("%s is not a known message id", msgID),
			}
		}
		t.logger.Warn("skipping rule with unknown message id", "id", msgID)
		return nil
	}
	t.markConfigured(msgID)

	if len(fields) > 1 {
		severity, err := types.ParseSeverity(fields[1])
		if err != nil {
			return &InvalidRuleError{Entry: entry, Detail: err.Error()}
		}
		t.severities[msgID] = severity
	}
	if len(fields) > 2 {
		effort, err := parseEffort(fields[2])
		if err != nil {
			return &InvalidRuleError{Entry: entry, Detail: err.Error()}
		}
		t.efforts[msgID] = effort
	}
	if len(fields) > 3 {
		issueType, err := types.ParseIssueType(fields[3])
		if err != nil {
			return &InvalidRuleError{Entry: entry, Detail: err.Error()}
		}
		t.issueTypes[msgID] = issueType
	}
	if len(fields) > 4 {
		t.logger.Warn("ignoring extra rule fields", "entry", entry, "extra", strings.Join(fields[4:], ":"))
	}
	return nil
}

// Add records a pre-parsed override, validating its message id against the
// catalog with the same halt/skip semantics as Load.
func (t *Table) Add(o Override, cat catalog.Catalog) error {
	if !cat.Known(o.MsgID) {
		if t.HaltOnInvalid {
			return &InvalidRuleError{
				Entry:  o.MsgID,
				Detail: fmt.Sprintf("%s is not a known message id", o.MsgID),
			}
		}
		t.logger.Warn("skipping rule with unknown message id", "id", o.MsgID)
		return nil
	}
	if o.Effort != nil && *o.Effort < 0 {
		return &InvalidRuleError{
			Entry:  o.MsgID,
			Detail: fmt.Sprintf("effort %d is negative", *o.Effort),
		}
	}

	t.markConfigured(o.MsgID)
	if o.Severity != nil {
		t.severities[o.MsgID] = *o.Severity
	}
	if o.Effort != nil {
		t.efforts[o.MsgID] = *o.Effort
	}
	if o.Type != nil {
		t.issueTypes[o.MsgID] = *o.Type
	}
	return nil
}

func (t *Table) markConfigured(msgID string) {
	if !t.configured[msgID] {
		t.configured[msgID] = true
		t.order = append(t.order, msgID)
	}
}

func parseEffort(s string) (int, error) {
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer", s)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("effort %d is negative", minutes)
	}
	return minutes, nil
}

// Severity returns the severity for a message id, falling back to the default.
func (t *Table) Severity(msgID string) types.Severity {
	if s, ok := t.severities[msgID]; ok {
		return s
	}
	return t.DefaultSeverity
}

// Effort returns the remediation effort in minutes for a message id,
// falling back to the default.
func (t *Table) Effort(msgID string) int {
	if m, ok := t.efforts[msgID]; ok {
		return m
	}
	return t.DefaultEffort
}

// Type returns the issue type for a message id, falling back to the default.
func (t *Table) Type(msgID string) types.IssueType {
	if ty, ok := t.issueTypes[msgID]; ok {
		return ty
	}
	return t.DefaultType
}

// IsConfigured returns true if a message id was named in the rule table,
// even by an entry carrying no overrides.
func (t *Table) IsConfigured(msgID string) bool {
	return t.configured[msgID]
}

// Configured returns the configured message ids in first-seen order.
func (t *Table) Configured() []string {
	result := make([]string, len(t.order))
	copy(result, t.order)
	return result
}

// Linter is the subset of the host API needed to restrict emittable
// messages to the configured set.
type Linter interface {
	// Emittable lists every message id the engine can emit
	Emittable() ([]string, error)

	// Enable allows a message id to be reported
	Enable(msgID string)

	// Disable suppresses a message id
	Disable(msgID string)
}

// Restrict disables every emittable message and re-enables only the
// configured ids. It fails if the host cannot enumerate its messages.
func (t *Table) Restrict(l Linter) error {
	emittable, err := l.Emittable()
	if err != nil {
		return err
	}
	for _, id := range emittable {
		l.Disable(id)
	}
	for _, id := range t.order {
		l.Enable(id)
	}
	return nil
}
