// Package config handles loading and validating sonarjson configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

// ConfigFileName is the config file searched for in the working directory.
const ConfigFileName = ".sonarjson.hcl"

// Config represents the sonarjson configuration
type Config struct {
	Version  int             `hcl:"version,attr"`
	Defaults *DefaultsConfig `hcl:"defaults,block"`
	Paths    *PathsConfig    `hcl:"paths,block"`
	Output   *OutputConfig   `hcl:"output,block"`
	Rules    []*RuleConfig   `hcl:"rule,block"`

	// Catalog is a path to a message-id table file, empty for the builtin
	Catalog string `hcl:"catalog,optional"`

	// OnlyConfigured restricts the report to messages named in rule blocks
	OnlyConfigured bool `hcl:"only_configured,optional"`

	// HaltOnInvalid fails the run on unknown message ids (nil means true)
	HaltOnInvalid *bool `hcl:"halt_on_invalid,optional"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// DefaultsConfig holds the fallback severity, effort, and type
type DefaultsConfig struct {
	Severity string `hcl:"severity,optional"`
	Effort   *int   `hcl:"effort,optional"`
	Type     string `hcl:"type,optional"`
}

// PathsConfig defines path filtering settings
type PathsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// RuleConfig defines per-message overrides
type RuleConfig struct {
	ID       string  `hcl:"id,label"`
	Severity *string `hcl:"severity,attr"`
	Effort   *int    `hcl:"effort,attr"`
	Type     *string `hcl:"type,attr"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// HaltOnInvalidEnabled returns the halt_on_invalid setting, true when unset
func (c *Config) HaltOnInvalidEnabled() bool {
	if c.HaltOnInvalid == nil {
		return true
	}
	return *c.HaltOnInvalid
}

// Overrides converts the rule blocks into resolver overrides.
func (c *Config) Overrides() ([]rules.Override, error) {
	result := make([]rules.Override, 0, len(c.Rules))
	for _, rc := range c.Rules {
		o := rules.Override{MsgID: rc.ID, Effort: rc.Effort}
		if rc.Severity != nil {
			severity, err := types.ParseSeverity(*rc.Severity)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", rc.ID, err)
			}
			o.Severity = &severity
		}
		if rc.Type != nil {
			issueType, err := types.ParseIssueType(*rc.Type)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", rc.ID, err)
			}
			o.Type = &issueType
		}
		result = append(result, o)
	}
	return result, nil
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), then ConfigFileName in cwd.
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile looks for the config file in the working directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Defaults == nil {
		cfg.Defaults = defaults.Defaults
	} else {
		if cfg.Defaults.Severity == "" {
			cfg.Defaults.Severity = defaults.Defaults.Severity
		}
		if cfg.Defaults.Effort == nil {
			cfg.Defaults.Effort = defaults.Defaults.Effort
		}
		if cfg.Defaults.Type == "" {
			cfg.Defaults.Type = defaults.Defaults.Type
		}
	}

	if cfg.Paths == nil {
		cfg.Paths = defaults.Paths
	} else {
		if len(cfg.Paths.Include) == 0 {
			cfg.Paths.Include = defaults.Paths.Include
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
