package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// Demo constants from the reference walkthrough: Bangkok is province 1,
// Khet Phra Nakhon is amphure 1001, Chiang Mai is province 38.
const (
	demoBangkokID    = 1
	demoPhraNakhonID = 1001
	demoChiangMaiID  = 38
	demoZipCode      = 10100
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted demonstration",
	Long: `Runs a scripted walkthrough of the service: capability discovery,
health check, table listing, a probe query, an administrative command,
a bounded search and the full administrative hierarchy traversal.

Discovery failure aborts the demo. Every later step is independent: a
failing step is reported and skipped, and the demo continues.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

//nolint:funlen // sequential narrative, splitting would obscure the order
func runDemo(cmd *cobra.Command, _ []string) error {
	if discoveryService == nil || dispatcherService == nil || adminService == nil {
		return errors.New("services not configured")
	}
	ctx := cmd.Context()

	// Step 1: discovery. The only fatal step.
	cmd.Println("== Capability discovery ==")
	descriptor, err := discoveryService.Discover(ctx)
	if err != nil {
		return fmt.Errorf("cannot reach service, aborting demo: %w", err)
	}
	cmd.Printf("service: %s %s\n", descriptor.Name, descriptor.Version)
	cmd.Printf("endpoints: %v\n", descriptor.EndpointNames())

	// Step 2: health. Degraded is informational, not fatal.
	cmd.Println("\n== Health ==")
	report := dispatcherService.HealthCheck(ctx)
	cmd.Printf("state: %s\n", report.State)
	if report.State != domain.HealthHealthy {
		cmd.Println("service is not healthy, continuing with limited expectations")
	}

	// Step 3: published usage hints.
	if len(descriptor.BestPractices) > 0 {
		cmd.Println("\n== Best practices ==")
		for i, practice := range descriptor.BestPractices {
			cmd.Printf("  %d. %s\n", i+1, practice)
		}
	}

	// Step 4: schema overview.
	cmd.Println("\n== Tables ==")
	if result := dispatcherService.Tables(ctx); result.Success {
		records := result.Records()
		cmd.Printf("%d tables\n", len(records))
		for i, record := range records {
			if i >= 5 {
				cmd.Printf("  ... and %d more\n", len(records)-5)
				break
			}
			if name, ok := record["name"].(string); ok {
				cmd.Printf("  %s\n", name)
			} else {
				cmd.Printf("  %v\n", record)
			}
		}
	} else {
		printError(cmd, "tables", result.Error)
	}

	// Step 5: probe query.
	cmd.Println("\n== Probe query ==")
	query := "SELECT 1 as test, 'Hello from smlgo' as message, now() as timestamp"
	if result := dispatcherService.ExecuteQuery(ctx, query); result.Success {
		cmd.Printf("%d rows in %s\n", result.RowCount, formatElapsed(result.Elapsed))
		if records := result.Records(); len(records) > 0 {
			cmd.Printf("  %v\n", records[0])
		}
	} else {
		printError(cmd, "query", result.Error)
	}

	// Step 6: administrative command.
	cmd.Println("\n== Command ==")
	if result := dispatcherService.ExecuteCommand(ctx, "SHOW TABLES"); result.Success {
		cmd.Printf("command executed in %s\n", formatElapsed(result.Elapsed))
	} else {
		printError(cmd, "command", result.Error)
	}

	// Step 7: bounded search. Shown and found counts are distinct.
	cmd.Println("\n== Search ==")
	if result := dispatcherService.Search(ctx, "test", 3); result.Success {
		records := result.Records()
		cmd.Printf("%d results shown, %d found\n", len(records), result.TotalFound)
	} else {
		printError(cmd, "search", result.Error)
	}

	// Step 8: hierarchy traversal. Each branch failure skips only that
	// branch; the walk continues with the next independent lookup.
	cmd.Println("\n== Administrative hierarchy ==")
	provincesResult := adminService.ListProvinces(ctx)
	if !provincesResult.Success {
		printError(cmd, "provinces", provincesResult.Error)
		cmd.Println("\ndemo finished")
		return nil
	}

	provinces := provincesResult.Provinces()
	cmd.Printf("%d provinces\n", len(provinces))
	for i, p := range provinces {
		if i >= 5 {
			cmd.Printf("  ... and %d more\n", len(provinces)-5)
			break
		}
		cmd.Printf("  %2d. %s (%s)\n", p.ID, p.NameTh, p.NameEn)
	}

	cmd.Println("\nDistricts in Bangkok:")
	if result := adminService.ListAmphures(ctx, demoBangkokID); result.Success {
		amphures := result.Amphures()
		cmd.Printf("%d amphures\n", len(amphures))

		cmd.Println("\nSub-districts in Khet Phra Nakhon:")
		if tambonsResult := adminService.ListTambons(ctx, demoPhraNakhonID, demoBangkokID); tambonsResult.Success {
			cmd.Printf("%d tambons\n", len(tambonsResult.Tambons()))
		} else {
			printError(cmd, "tambons", tambonsResult.Error)
		}
	} else {
		printError(cmd, "amphures", result.Error)
	}

	cmd.Println("\nDistricts in Chiang Mai:")
	if result := adminService.ListAmphures(ctx, demoChiangMaiID); result.Success {
		cmd.Printf("%d amphures\n", len(result.Amphures()))
	} else {
		printError(cmd, "amphures", result.Error)
	}

	cmd.Printf("\nLocations for zip code %d:\n", demoZipCode)
	if result := adminService.FindByZipCode(ctx, demoZipCode); result.Success {
		cmd.Printf("%d locations\n", len(result.Locations()))
	} else {
		printError(cmd, "zipcode", result.Error)
	}

	cmd.Println("\ndemo finished")
	return nil
}
