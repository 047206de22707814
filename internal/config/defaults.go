package config

import "github.com/lintkit/sonarjson/internal/types"

// Default returns the default configuration
func Default() *Config {
	effort := types.DefaultEffort
	return &Config{
		Version: 1,
		Defaults: &DefaultsConfig{
			Severity: types.DefaultSeverity.String(),
			Effort:   &effort,
			Type:     types.DefaultType.String(),
		},
		Paths: &PathsConfig{
			Include: []string{"**"},
			Exclude: []string{},
		},
		Output: &OutputConfig{
			Format: "sonar",
			Color:  "auto",
		},
		Rules: []*RuleConfig{},
	}
}
