package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search products",
	Long: `Performs a free-text product search with a bounded result count.
The service may find more matches than it returns; both numbers are
reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if dispatcherService == nil {
		return errors.New("dispatcher service not configured")
	}

	result := dispatcherService.Search(cmd.Context(), args[0], searchLimit)
	if !result.Success {
		printError(cmd, "search", result.Error)
		return nil
	}

	records := result.Records()
	if searchJSON {
		return outputRecordsJSON(cmd, records)
	}

	cmd.Printf("%d results shown, %d found (%s)\n",
		len(records), result.TotalFound, formatElapsed(result.Elapsed))
	for i, record := range records {
		name, _ := record["product_name"].(string)
		code, _ := record["product_code"].(string)
		if name == "" {
			if fallback, ok := record["name"].(string); ok {
				name = fallback
			}
		}
		switch {
		case name != "" && code != "":
			cmd.Printf("  [%d] %s (%s)\n", i+1, name, code)
		case name != "":
			cmd.Printf("  [%d] %s\n", i+1, name)
		default:
			cmd.Printf("  [%d] %v\n", i+1, record)
		}
	}
	return nil
}
