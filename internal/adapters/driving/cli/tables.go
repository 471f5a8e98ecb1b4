package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List database tables",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, _ []string) error {
	if dispatcherService == nil {
		return errors.New("dispatcher service not configured")
	}

	result := dispatcherService.Tables(cmd.Context())
	if !result.Success {
		printError(cmd, "tables", result.Error)
		return nil
	}

	records := result.Records()
	cmd.Printf("%d tables\n", len(records))
	for _, record := range records {
		if name, ok := record["name"].(string); ok {
			cmd.Printf("  %s\n", name)
			continue
		}
		cmd.Printf("  %v\n", record)
	}
	return nil
}
