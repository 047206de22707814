package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "sonarjson",
	Short: "Convert pylint diagnostics to SonarQube generic-issue JSON",
	Long: `sonarjson converts pylint JSON reports into the generic-issue JSON
format SonarQube imports, with configurable severity, remediation effort,
and issue type per pylint message id.

Severities, efforts, and types are remapped through a rule table given as
--rule-table entries (<msgid>[:<severity>[:<effort>[:<type>]]]) or as rule
blocks in a .sonarjson.hcl configuration file.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
