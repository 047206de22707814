package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lintkit/sonarjson/internal/catalog"
	"github.com/lintkit/sonarjson/internal/config"
	"github.com/lintkit/sonarjson/internal/host"
	"github.com/lintkit/sonarjson/internal/ingest"
	"github.com/lintkit/sonarjson/internal/output"
	"github.com/lintkit/sonarjson/internal/pathfilter"
	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

var (
	rulesFlag           []string
	defaultSeverityFlag string
	defaultEffortFlag   int
	defaultTypeFlag     string
	onlyConfiguredFlag  bool
	haltFlag            bool
	catalogFlag         string
	configFlag          string
	formatFlag          string
	outputFlag          string
	colorFlag           string
	verboseFlag         bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [report]",
	Short: "Convert a pylint JSON report",
	Long: `Convert a pylint JSON report (pylint --output-format=json) into a
SonarQube generic-issue document.

Reads the report from the given file, or from stdin when no file (or "-")
is given. The generic-issue JSON is written to stdout unless --output is
set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringSliceVarP(&rulesFlag, "rule-table", "r", nil,
		"Rule table entries <msgid>[:<severity>[:<effort>[:<type>]]], e.g. C0326:MINOR:1,E0102:MAJOR:5:BUG")
	convertCmd.Flags().StringVar(&defaultSeverityFlag, "default-severity", "MINOR",
		"Severity for messages not in the rule table: BLOCKER, CRITICAL, MAJOR, MINOR, INFO")
	convertCmd.Flags().IntVar(&defaultEffortFlag, "default-effort", 5,
		"Effort minutes for messages not in the rule table")
	convertCmd.Flags().StringVar(&defaultTypeFlag, "default-type", "CODE_SMELL",
		"Issue type for messages not in the rule table: BUG, VULNERABILITY, CODE_SMELL")
	convertCmd.Flags().BoolVar(&onlyConfiguredFlag, "restrict-to-configured", false,
		"Report only messages named in the rule table")
	convertCmd.Flags().BoolVar(&haltFlag, "halt-on-invalid-rule", true,
		"Fail on unknown message ids in the rule table instead of skipping them")
	convertCmd.Flags().StringVar(&catalogFlag, "catalog", "",
		"Message-id catalog file, or 'none' to disable id validation (default: builtin pylint catalog)")
	convertCmd.Flags().StringVar(&configFlag, "config", "",
		"Path to config file (default: "+config.ConfigFileName+" in the working directory)")
	convertCmd.Flags().StringVar(&formatFlag, "format", "sonar", "Output format: sonar, text")
	convertCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	convertCmd.Flags().StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")
	convertCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	// Flags that were set explicitly win over config file values.
	flagSet := cmd.Flags().Changed

	catalogSource := cfg.Catalog
	if flagSet("catalog") {
		catalogSource = catalogFlag
	}
	cat, err := buildCatalog(catalogSource)
	if err != nil {
		return err
	}

	table, err := buildTable(cfg, cat, flagSet, logger)
	if err != nil {
		return err
	}

	h := host.New(cat, logger)

	format := cfg.Output.Format
	if flagSet("format") {
		format = formatFlag
	}
	switch format {
	case "sonar", "text":
	default:
		return fmt.Errorf("invalid --format value: %s (must be 'sonar' or 'text')", format)
	}

	// Determine output writer
	var writer *os.File
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	} else {
		writer = os.Stdout
	}

	renderer := output.NewRenderer(output.Format(format), shouldUseColor(cfg, flagSet, writer))
	h.Register(output.NewReporter(table, renderer))

	onlyConfigured := cfg.OnlyConfigured
	if flagSet("restrict-to-configured") {
		onlyConfigured = onlyConfiguredFlag
	}
	if onlyConfigured {
		if err := table.Restrict(h); err != nil {
			return fmt.Errorf("cannot restrict to configured rules: %w", err)
		}
	}

	messages, err := readReport(args)
	if err != nil {
		return err
	}

	filter := pathfilter.New(cfg.Paths.Include, cfg.Paths.Exclude)
	messages, err = filter.Messages(messages)
	if err != nil {
		return fmt.Errorf("invalid path pattern: %w", err)
	}

	for _, msg := range messages {
		h.Emit(msg)
	}

	if err := h.Finalize(writer); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "sonarjson",
		Level:  level,
		Output: os.Stderr,
	})
}

// buildCatalog resolves the catalog source: empty for the builtin table,
// "none" for no validation, anything else is a msgid table file.
func buildCatalog(source string) (catalog.Catalog, error) {
	switch source {
	case "":
		return catalog.Builtin(), nil
	case "none":
		return catalog.Permissive{}, nil
	default:
		return catalog.FromFile(source)
	}
}

// buildTable assembles the rule table: defaults first, then config file
// rule blocks, then --rule-table entries so the command line wins.
func buildTable(cfg *config.Config, cat catalog.Catalog, flagSet func(string) bool, logger hclog.Logger) (*rules.Table, error) {
	table := rules.NewTable(logger)

	table.HaltOnInvalid = cfg.HaltOnInvalidEnabled()
	if flagSet("halt-on-invalid-rule") {
		table.HaltOnInvalid = haltFlag
	}

	severityStr := cfg.Defaults.Severity
	if flagSet("default-severity") {
		severityStr = defaultSeverityFlag
	}
	severity, err := types.ParseSeverity(severityStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --default-severity value: %w", err)
	}
	table.DefaultSeverity = severity

	effort := *cfg.Defaults.Effort
	if flagSet("default-effort") {
		effort = defaultEffortFlag
	}
	if effort < 0 {
		return nil, fmt.Errorf("invalid --default-effort value: %d is negative", effort)
	}
	table.DefaultEffort = effort

	typeStr := cfg.Defaults.Type
	if flagSet("default-type") {
		typeStr = defaultTypeFlag
	}
	issueType, err := types.ParseIssueType(typeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --default-type value: %w", err)
	}
	table.DefaultType = issueType

	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if err := table.Add(o, cat); err != nil {
			return nil, err
		}
	}

	if err := table.Load(rulesFlag, cat); err != nil {
		return nil, err
	}
	return table, nil
}

func readReport(args []string) ([]types.Message, error) {
	if len(args) == 1 && args[0] != "-" {
		return ingest.ReadFile(args[0])
	}
	return ingest.Read(os.Stdin)
}

func shouldUseColor(cfg *config.Config, flagSet func(string) bool, f *os.File) bool {
	mode := cfg.Output.Color
	if flagSet("color") {
		mode = colorFlag
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
