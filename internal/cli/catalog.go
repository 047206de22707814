package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintkit/sonarjson/internal/catalog"
)

var catalogFileFlag string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the emittable message catalog",
	Long: `List the message ids and symbols the rule table is validated against.

Shows the builtin pylint catalog, or the one loaded from --file.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogFileFlag, "file", "", "Message-id catalog file (default: builtin)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	store := catalog.Builtin()
	if catalogFileFlag != "" {
		loaded, err := catalog.FromFile(catalogFileFlag)
		if err != nil {
			return err
		}
		store = loaded
	}

	for _, entry := range store.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", entry.MsgID, entry.Symbol)
	}
	return nil
}
