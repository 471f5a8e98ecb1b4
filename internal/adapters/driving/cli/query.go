package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

var (
	selectJSON bool
	selectRows int
)

var selectCmd = &cobra.Command{
	Use:   "select [sql]",
	Short: "Execute a read-only query",
	Long: `Sends a read-only SQL query to the service and prints the returned
records. The query must not mutate state; use 'smlgo command' for
administrative statements.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

var commandCmd = &cobra.Command{
	Use:   "command [sql]",
	Short: "Execute an administrative statement",
	Long: `Sends an administrative SQL statement (for example schema inspection
or data modification) to the service. No row data comes back; the
result is binary success plus an optional message.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommand,
}

func init() {
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "output records as JSON")
	selectCmd.Flags().IntVarP(&selectRows, "rows", "n", 10, "maximum rows to print")
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(commandCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	if dispatcherService == nil {
		return errors.New("dispatcher service not configured")
	}

	result := dispatcherService.ExecuteQuery(cmd.Context(), args[0])
	if !result.Success {
		printError(cmd, "query", result.Error)
		return nil
	}

	if selectJSON {
		return outputRecordsJSON(cmd, result.Records())
	}
	return outputQueryResult(cmd, result)
}

func runCommand(cmd *cobra.Command, args []string) error {
	if dispatcherService == nil {
		return errors.New("dispatcher service not configured")
	}

	result := dispatcherService.ExecuteCommand(cmd.Context(), args[0])
	if !result.Success {
		printError(cmd, "command", result.Error)
		return nil
	}

	message := result.Message
	if message == "" {
		message = "OK"
	}
	cmd.Printf("%s (%s)\n", message, formatElapsed(result.Elapsed))
	return nil
}

func outputRecordsJSON(cmd *cobra.Command, records []map[string]any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryResult(cmd *cobra.Command, result domain.Result) error {
	records := result.Records()

	rowCount := result.RowCount
	if rowCount == 0 {
		rowCount = len(records)
	}
	cmd.Printf("%d rows (%s)\n", rowCount, formatElapsed(result.Elapsed))

	limit := selectRows
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}
	for _, record := range records[:limit] {
		line, err := json.Marshal(record)
		if err != nil {
			continue
		}
		cmd.Printf("  %s\n", line)
	}
	if limit < len(records) {
		cmd.Printf("  ... and %d more rows\n", len(records)-limit)
	}
	return nil
}
