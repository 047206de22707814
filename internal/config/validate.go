package config

import (
	"fmt"

	"github.com/lintkit/sonarjson/internal/types"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	// Validate defaults
	if cfg.Defaults != nil {
		if cfg.Defaults.Severity != "" {
			if _, err := types.ParseSeverity(cfg.Defaults.Severity); err != nil {
				return fmt.Errorf("invalid default severity: %w", err)
			}
		}
		if cfg.Defaults.Effort != nil && *cfg.Defaults.Effort < 0 {
			return fmt.Errorf("invalid default effort: %d is negative", *cfg.Defaults.Effort)
		}
		if cfg.Defaults.Type != "" {
			if _, err := types.ParseIssueType(cfg.Defaults.Type); err != nil {
				return fmt.Errorf("invalid default type: %w", err)
			}
		}
	}

	// Validate output format
	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "sonar", "text":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'sonar' or 'text')", cfg.Output.Format)
		}
	}

	// Validate output color
	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	// Validate rule overrides. Message ids are checked later against the
	// live catalog, which is not known until flags are resolved.
	for _, rule := range cfg.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rule block with empty message id")
		}
		if rule.Severity != nil {
			if _, err := types.ParseSeverity(*rule.Severity); err != nil {
				return fmt.Errorf("invalid severity for rule %s: %w", rule.ID, err)
			}
		}
		if rule.Effort != nil && *rule.Effort < 0 {
			return fmt.Errorf("invalid effort for rule %s: %d is negative", rule.ID, *rule.Effort)
		}
		if rule.Type != nil {
			if _, err := types.ParseIssueType(*rule.Type); err != nil {
				return fmt.Errorf("invalid type for rule %s: %w", rule.ID, err)
			}
		}
	}

	return nil
}
